package application

import (
	"path/filepath"
	"testing"
)

func TestGetApplicationDirectory(t *testing.T) {
	dir, err := GetApplicationDirectory()
	if err != nil {
		t.Fatalf("GetApplicationDirectory() error = %v", err)
	}

	if filepath.Base(dir) != AppName {
		t.Errorf("GetApplicationDirectory() = %q, want a path ending in %q", dir, AppName)
	}
}
