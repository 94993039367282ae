package secrets

import "sync"

// Store keeps queue-manager passwords keyed by connection id. The engine
// only ever consumes this interface; it never persists credentials itself.
type Store interface {
	// GetPassword returns the secret for id, with ok false when none is set.
	GetPassword(id string) (secret string, ok bool)
	SetPassword(id, secret string) error
	DeletePassword(id string) error
}

// MemoryStore is a process-local Store, used in tests and as a fallback when
// no secrets file is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	secrets map[string]string
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{secrets: make(map[string]string)}
}

func (s *MemoryStore) GetPassword(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	secret, ok := s.secrets[id]
	return secret, ok
}

func (s *MemoryStore) SetPassword(id, secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secrets[id] = secret
	return nil
}

func (s *MemoryStore) DeletePassword(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.secrets, id)
	return nil
}
