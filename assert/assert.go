package assert

import (
	"reflect"
	"testing"
	"time"
)

// Equal compares expected against got and calls t.Fatalf if they differ.
// Errors are considered equal if they have the same concrete type and the
// same message. Times are considered equal according to time.Time.Equal.
// Everything else is compared with reflect.DeepEqual.
func Equal(t *testing.T, expected interface{}, got interface{}) {
	t.Helper()
	if !isEqual(expected, got) {
		t.Fatalf("expected '%v', got '%v'", expected, got)
	}
}

// NoError calls t.Fatalf if err is non-nil.
func NoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("got an error but didn't want one: '%v'", err)
	}
}

// GotError calls t.Fatalf if err is nil.
func GotError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an error but didn't get one")
	}
}

func isEqual(expected interface{}, got interface{}) bool {
	if expected == nil || got == nil {
		return expected == got
	}

	if expectedError, ok := expected.(error); ok {
		gotError, ok := got.(error)
		if !ok {
			return false
		}
		return isEqualError(expectedError, gotError)
	}

	if expectedTime, ok := asTime(expected); ok {
		gotTime, ok := asTime(got)
		if !ok {
			return false
		}
		return expectedTime.Equal(gotTime)
	}

	return reflect.DeepEqual(expected, got)
}

// isEqualError requires the two errors to have the same concrete type: a
// bare fmt.Errorf never compares equal to a custom error type, even if the
// messages happen to match.
func isEqualError(expected error, got error) bool {
	if reflect.TypeOf(expected) != reflect.TypeOf(got) {
		return false
	}
	return expected.Error() == got.Error()
}

func asTime(value interface{}) (time.Time, bool) {
	switch t := value.(type) {
	case time.Time:
		return t, true

	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, true
	}
	return time.Time{}, false
}
