package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// FileSpec describes a file to be written by MustWriteTestFiles.
type FileSpec struct {
	// Path is the slash-separated path relative to the test directory.
	Path string
	// Content is the file content.
	Content string
}

// MustWriteTestFiles writes the given files under dir and returns their
// absolute names.
func MustWriteTestFiles(t *testing.T, dir string, files []FileSpec) []string {
	t.Helper()
	var filenames []string
	for _, file := range files {
		abs := filepath.Join(dir, filepath.FromSlash(file.Path))
		if err := os.MkdirAll(filepath.Dir(abs), os.ModePerm); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(abs, []byte(file.Content), 0644); err != nil {
			t.Fatal(err)
		}
		filenames = append(filenames, abs)
	}
	return filenames
}

// MustReadTestFile returns the content of a file under dir.
func MustReadTestFile(t *testing.T, dir string, filename string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatal("reading", filename, ":", err)
	}
	return string(data)
}

// EqualError reports whether errors a and b are considered equal.
// They're equal if both are nil, or both are not nil and a.Error() == b.Error().
func EqualError(a, b error) bool {
	return a == nil && b == nil || a != nil && b != nil && a.Error() == b.Error()
}

// ExpectError asserts that the errors are equal.  Return value is true
// if the "want" argument is non-nil.
func ExpectError(t *testing.T, want, got error) bool {
	t.Helper()
	if !EqualError(want, got) {
		t.Fatal("errors: want:", want, "got:", got)
	}
	return want != nil
}
