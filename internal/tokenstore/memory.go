package tokenstore

import (
	"context"
	"sync"
	"time"

	"pharmaradar/internal/domain"
)

type memoryEntry struct {
	tokens    domain.Tokens
	expiresAt time.Time
}

type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

func (s *MemoryStore) SetTokens(_ context.Context, sessionID string, tokens domain.Tokens) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sessionID] = memoryEntry{
		tokens:    tokens,
		expiresAt: time.Now().Add(s.ttl),
	}

	return nil
}

func (s *MemoryStore) GetTokens(_ context.Context, sessionID string) (domain.Tokens, error) {
	s.mu.RLock()
	entry, ok := s.entries[sessionID]
	s.mu.RUnlock()

	if !ok || entry.tokens.AccessToken == "" {
		return domain.Tokens{}, ErrNotFound
	}

	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, sessionID)
		s.mu.Unlock()
		return domain.Tokens{}, ErrNotFound
	}

	return entry.tokens, nil
}

func (s *MemoryStore) RemoveTokens(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)

	return nil
}

func (s *MemoryStore) IsAuthenticated(ctx context.Context, sessionID string) bool {
	_, err := s.GetTokens(ctx, sessionID)
	return err == nil
}
