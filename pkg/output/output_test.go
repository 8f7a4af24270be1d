package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tkurosawa/quotecard/pkg/errors"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.png")

	if err := Write(path, []byte("data")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "data" {
		t.Errorf("written content = %q, want %q", got, "data")
	}
}

func TestWriteCreatesIntermediateDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c", "card.png")

	if err := Write(path, []byte("data")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not created: %v", err)
	}
}

func TestWriteOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.png")
	if err := Write(path, []byte("old")); err != nil {
		t.Fatal(err)
	}
	if err := Write(path, []byte("new")); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}
}

func TestWriteRejectsDirectoryDestination(t *testing.T) {
	dir := t.TempDir()

	err := Write(dir, []byte("data"))
	if !errors.Is(err, errors.ErrCodeFileWrite) {
		t.Errorf("Write(dir) code = %v, want FILE_WRITE_FAILED", errors.GetCode(err))
	}
}
