// Package storage is the key-value blob store the game persists itself to.
// Failures are expected (full disk, read-only home) and must never take the
// game down; callers keep playing from memory.
package storage

import (
	"log"
	"os"
	"path/filepath"
)

// Store is the persistence collaborator contract.
type Store interface {
	// Get returns the stored value for key, or false when absent or
	// unreadable.
	Get(key string) (string, bool)
	// Set writes the value for key. A non-nil error means the write was
	// lost; gameplay continues regardless.
	Set(key, value string) error
	// Remove deletes the key. Removing an absent key is a no-op.
	Remove(key string)
}

// FileStore keeps each key as a file under a data directory.
type FileStore struct {
	dir string
}

// TestDataDir overrides the default data directory in tests.
var TestDataDir string

// DefaultDir returns the per-user data directory, creating it if needed.
func DefaultDir() (string, error) {
	if TestDataDir != "" {
		return TestDataDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "petplay")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// NewFileStore creates a store rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (fs *FileStore) path(key string) string {
	return filepath.Join(fs.dir, key+".json")
}

func (fs *FileStore) Get(key string) (string, bool) {
	data, err := os.ReadFile(fs.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Error reading %s: %v", key, err)
		}
		return "", false
	}
	return string(data), true
}

func (fs *FileStore) Set(key, value string) error {
	return os.WriteFile(fs.path(key), []byte(value), 0644)
}

func (fs *FileStore) Remove(key string) {
	if err := os.Remove(fs.path(key)); err != nil && !os.IsNotExist(err) {
		log.Printf("Error removing %s: %v", key, err)
	}
}

// MemStore is an in-memory Store. Tests use it directly; the game falls
// back to it when the file store is unavailable, trading persistence for an
// uninterrupted session.
type MemStore struct {
	data map[string]string
	// FailWrites simulates a full or disabled backing store.
	FailWrites bool
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]string)}
}

func (ms *MemStore) Get(key string) (string, bool) {
	v, ok := ms.data[key]
	return v, ok
}

func (ms *MemStore) Set(key, value string) error {
	if ms.FailWrites {
		return os.ErrPermission
	}
	ms.data[key] = value
	return nil
}

func (ms *MemStore) Remove(key string) {
	delete(ms.data, key)
}
