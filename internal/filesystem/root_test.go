package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckRoot(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"Directory", dir, nil},
		{"Missing", filepath.Join(dir, "missing"), ErrRootNotFound},
		{"File", file, ErrNotDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRoot(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckRoot(%q) = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestOpenRoot(t *testing.T) {
	dir := t.TempDir()

	fsys, err := OpenRoot(dir)
	if err != nil {
		t.Fatalf("OpenRoot() error = %v", err)
	}
	if fsys.Root() != dir {
		t.Errorf("Root() = %q, want %q", fsys.Root(), dir)
	}

	if _, err := OpenRoot(filepath.Join(dir, "missing")); !errors.Is(err, ErrRootNotFound) {
		t.Errorf("OpenRoot() error = %v, want %v", err, ErrRootNotFound)
	}
}
