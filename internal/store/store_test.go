package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.yaml")

	fs := Open(path)
	if err := fs.Set("darkMode", "true"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := fs.Set("usedPackages", `["pandas","numpy"]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// Reopen and verify both keys survived
	reopened := Open(path)
	if v, ok := reopened.Get("darkMode"); !ok || v != "true" {
		t.Errorf("darkMode = %q, %v; want %q, true", v, ok, "true")
	}
	if v, ok := reopened.Get("usedPackages"); !ok || v != `["pandas","numpy"]` {
		t.Errorf("usedPackages = %q, %v; want JSON array", v, ok)
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.yaml")

	fs := Open(path)
	if _, ok := fs.Get("darkMode"); ok {
		t.Error("Expected no value from missing file")
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.yaml")
	if err := os.WriteFile(path, []byte("not: valid: yaml: [}"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	// Corrupt state must not block startup
	fs := Open(path)
	if _, ok := fs.Get("usedPackages"); ok {
		t.Error("Expected empty store from corrupt file")
	}

	// The store must still accept writes afterwards
	if err := fs.Set("darkMode", "false"); err != nil {
		t.Fatalf("Set after corrupt open failed: %v", err)
	}
	if v, _ := Open(path).Get("darkMode"); v != "false" {
		t.Errorf("darkMode after rewrite = %q, want %q", v, "false")
	}
}

func TestStorePath(t *testing.T) {
	tmpDir := t.TempDir()

	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tmpDir)
	defer os.Setenv("HOME", originalHome)

	path, err := StorePath()
	if err != nil {
		t.Fatalf("StorePath failed: %v", err)
	}

	expected := filepath.Join(tmpDir, ".config", "pipmirror-tui", "storage.yaml")
	if path != expected {
		t.Errorf("StorePath = %s, want %s", path, expected)
	}

	// Parent directory must exist after the call
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("Config directory was not created: %v", err)
	}
}

func TestMemStore(t *testing.T) {
	ms := NewMemStore()
	if _, ok := ms.Get("darkMode"); ok {
		t.Error("Expected empty MemStore")
	}
	if err := ms.Set("darkMode", "true"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if v, ok := ms.Get("darkMode"); !ok || v != "true" {
		t.Errorf("Get = %q, %v; want %q, true", v, ok, "true")
	}
}
