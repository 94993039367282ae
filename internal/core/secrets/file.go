package secrets

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// FileStore persists secrets as a JSON map in a mode-0600 file. It stands in
// for an OS keychain on headless deployments.
type FileStore struct {
	mu      sync.Mutex
	path    string
	secrets map[string]string
}

var _ Store = (*FileStore)(nil)

// OpenFileStore loads (or creates) the secrets file at path.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, secrets: make(map[string]string)}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading secrets file: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.secrets); err != nil {
			return nil, fmt.Errorf("parsing secrets file: %w", err)
		}
	}
	return s, nil
}

func (s *FileStore) GetPassword(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	secret, ok := s.secrets[id]
	return secret, ok
}

func (s *FileStore) SetPassword(id, secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secrets[id] = secret
	return s.flush()
}

func (s *FileStore) DeletePassword(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.secrets, id)
	return s.flush()
}

func (s *FileStore) flush() error {
	data, err := json.MarshalIndent(s.secrets, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding secrets: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing secrets file: %w", err)
	}
	return nil
}
