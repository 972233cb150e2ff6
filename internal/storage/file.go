package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// FileStore keeps one <key>.json document per key under a data directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns the store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads and decodes the document for key. Missing or unparseable
// files leave v untouched.
func (s *FileStore) Load(key string, v any) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Storage: cannot read %s: %v", key, err)
		}
		return false
	}
	if err := decodeDocument(data, v); err != nil {
		log.Printf("⚠️ Storage: corrupt document %s, falling back to defaults: %v", key, err)
		return false
	}
	return true
}

// Save writes the document atomically (temp file + rename) so a crash
// mid-write never leaves a half-written document behind.
func (s *FileStore) Save(key string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("⚠️ Storage: cannot serialize %s: %v", key, err)
		return
	}
	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		log.Printf("⚠️ Storage: cannot write %s: %v", key, err)
		return
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		log.Printf("⚠️ Storage: cannot write %s: %v", key, err)
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		log.Printf("⚠️ Storage: cannot write %s: %v", key, err)
		return
	}
	if err := os.Rename(name, s.path(key)); err != nil {
		os.Remove(name)
		log.Printf("⚠️ Storage: cannot write %s: %v", key, err)
	}
}
