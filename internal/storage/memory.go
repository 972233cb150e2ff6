package storage

import (
	"encoding/json"
	"log"
	"sync"
)

// MemoryStore is a map-backed Adapter used in tests and as a degraded
// fallback when no durable backend is available.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[string][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

// Load decodes the in-memory document for key, if any.
func (s *MemoryStore) Load(key string, v any) bool {
	s.mu.Lock()
	data, ok := s.docs[key]
	s.mu.Unlock()
	if !ok {
		return false
	}
	if err := decodeDocument(data, v); err != nil {
		log.Printf("⚠️ Storage: corrupt in-memory document %s: %v", key, err)
		return false
	}
	return true
}

// Save keeps the serialized document in memory.
func (s *MemoryStore) Save(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("⚠️ Storage: cannot serialize %s: %v", key, err)
		return
	}
	s.mu.Lock()
	s.docs[key] = data
	s.mu.Unlock()
}
