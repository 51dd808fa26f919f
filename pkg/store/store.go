// Package store persists app collections in a single local key-value file.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Logical keys used by the app.
const (
	KeyMeetings = "meetingNotes"
	KeyUsers    = "meetingUsers"
	KeyLogin    = "loginConfig"
	KeyTheme    = "theme"
)

// Store is a string key-value store. Absence is reported via Get's
// second return; corrupt or missing backing data surfaces as absent
// keys, never as an error.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// FileStore keeps all keys in one JSON file, rewritten on every Set.
type FileStore struct {
	path   string
	values map[string]string
}

// OpenFileStore loads the store file at path. A missing, unreadable or
// corrupt file behaves as an empty store.
func OpenFileStore(path string) *FileStore {
	fs := &FileStore{path: path, values: map[string]string{}}
	data, err := os.ReadFile(path)
	if err != nil {
		return fs
	}
	if err := json.Unmarshal(data, &fs.values); err != nil {
		fs.values = map[string]string{}
	}
	return fs
}

// Get returns the value stored under key.
func (fs *FileStore) Get(key string) (string, bool) {
	v, ok := fs.values[key]
	return v, ok
}

// Set stores the value and rewrites the whole backing file.
func (fs *FileStore) Set(key, value string) error {
	fs.values[key] = value
	data, err := json.MarshalIndent(fs.values, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(fs.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(fs.path, data, 0o644)
}
