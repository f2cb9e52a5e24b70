package osfilesystem

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSystem_ReadWrite(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "frame.png")
	data := []byte{0x89, 'P', 'N', 'G'}

	if err := fs.WriteFile(path, data); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("read back %v, expected %v", got, data)
	}
}

func TestFileSystem_WriteFileCreatesParents(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "out", "frames", "0001.png")

	if err := fs.WriteFile(path, []byte("x")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %v", err)
	}
}

func TestFileSystem_Exists(t *testing.T) {
	fs := New()
	dir := t.TempDir()
	path := filepath.Join(dir, "present")

	ok, err := fs.Exists(path)
	if err != nil || ok {
		t.Fatalf("expected absent, got %v, %v", ok, err)
	}

	if err := fs.WriteFile(path, nil); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	ok, err = fs.Exists(path)
	if err != nil || !ok {
		t.Fatalf("expected present, got %v, %v", ok, err)
	}
}

func TestFileSystem_Remove(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "doomed")
	if err := fs.WriteFile(path, []byte("x")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := fs.Remove(path); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if ok, _ := fs.Exists(path); ok {
		t.Error("file still exists after Remove")
	}
}
