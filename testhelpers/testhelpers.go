package testhelpers

import (
	"io/ioutil"
	"path/filepath"
	"testing"
)

// Maketemp creates and returns a temporary directory. Callers are
// responsible for removing it, typically with `defer os.RemoveAll(dir)`.
func Maketemp(t *testing.T) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "gpgtool-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	return dir
}

// WriteTempFile writes data to a new file called filename inside dir and
// returns the full path of the file.
func WriteTempFile(t *testing.T, dir string, filename string, data []byte) string {
	t.Helper()
	fullPath := filepath.Join(dir, filename)
	if err := ioutil.WriteFile(fullPath, data, 0600); err != nil {
		t.Fatalf("failed to write %s: %v", fullPath, err)
	}
	return fullPath
}
