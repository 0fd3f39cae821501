package storage

import "sync"

// Store is the key-value capability all state stores are built on. The
// interface is deliberately lossy on reads: a missing, corrupt, or
// unreadable key is simply absent, and the next write repairs it.
type Store interface {
	Get(key string) (value string, ok bool)
	Set(key, value string) error
	Remove(key string)
}

// MemoryStore keeps values in-process. It backs tests and serves as the
// ephemeral fallback when no durable backend is configured.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}
