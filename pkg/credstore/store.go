package credstore

import (
	"errors"
	"sync"
)

// Storage keys shared with the admin panel frontend.
const (
	KeyToken = "auth_token"
	KeyUser  = "auth_user"
)

var ErrNotFound = errors.New("credential not found")

// Store is the persistent key/value capability the HTTP client uses for the
// bearer token and the logged-in user snapshot. Implementations must be safe
// for concurrent use.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Token returns the stored bearer token, or "" when absent.
func Token(s Store) string {
	v, err := s.Get(KeyToken)
	if err != nil {
		return ""
	}
	return v
}

// ClearAuth removes both the token and the user snapshot.
func ClearAuth(s Store) {
	_ = s.Delete(KeyToken)
	_ = s.Delete(KeyUser)
}

// Memory is an in-process Store used in tests and as a non-persistent default.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
