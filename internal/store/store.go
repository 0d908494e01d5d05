// Package store provides the persistent key-value store backing history
// and theme state.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store is a string-keyed, string-valued persistent store. Set flushes
// immediately; the store is a write-through cache over its medium.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool)

	// Set stores value under key and persists it.
	Set(key, value string) error
}

// FileStore persists keys to a YAML file. The file is read once at open;
// every Set rewrites it.
type FileStore struct {
	path   string
	values map[string]string
}

// StorePath returns the full path to the storage file.
// Creates the parent directory if it doesn't exist.
func StorePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(homeDir, ".config", "pipmirror-tui")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(dir, "storage.yaml"), nil
}

// Open reads the store file at path. A missing or unparseable file yields
// an empty store rather than an error, so corrupt state never blocks
// startup.
func Open(path string) *FileStore {
	fs := &FileStore{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		return fs
	}

	if err := yaml.Unmarshal(data, &fs.values); err != nil {
		fs.values = make(map[string]string)
	}
	return fs
}

// Get implements Store.
func (fs *FileStore) Get(key string) (string, bool) {
	v, ok := fs.values[key]
	return v, ok
}

// Set implements Store.
func (fs *FileStore) Set(key, value string) error {
	fs.values[key] = value

	data, err := yaml.Marshal(fs.values)
	if err != nil {
		return fmt.Errorf("failed to serialize store: %w", err)
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(fs.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}

	return nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	Values map[string]string
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{Values: make(map[string]string)}
}

// Get implements Store.
func (ms *MemStore) Get(key string) (string, bool) {
	v, ok := ms.Values[key]
	return v, ok
}

// Set implements Store.
func (ms *MemStore) Set(key, value string) error {
	ms.Values[key] = value
	return nil
}
