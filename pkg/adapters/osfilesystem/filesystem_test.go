package osfilesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSystem_MkdirAllAndExists(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	nested := filepath.Join(tmpDir, "a", "b", "c")
	if err := fs.MkdirAll(nested); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	exists, err := fs.Exists(nested)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected nested directory to exist")
	}

	exists, err = fs.Exists(filepath.Join(tmpDir, "missing"))
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected missing path to not exist")
	}
}

func TestFileSystem_Remove(t *testing.T) {
	fs := New()
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "victim.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if err := fs.Remove(path); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	exists, err := fs.Exists(path)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected file to be removed")
	}
}
