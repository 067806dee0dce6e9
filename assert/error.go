package assert

import "testing"

// ErrorIsNil calls t.Fatalf if got is a non-nil error.
func ErrorIsNil(t *testing.T, got error) {
	t.Helper()
	if got != nil {
		t.Fatalf("got an error but didnt want one '%s'", got)
	}
}

// ErrorIsNotNil calls t.Fatalf if got is nil.
func ErrorIsNotNil(t *testing.T, got error) {
	t.Helper()
	if got == nil {
		t.Fatalf("expected an error, but got none")
	}
}
