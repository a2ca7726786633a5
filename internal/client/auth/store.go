package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/takenotes/internal/client/storage"
)

// TokenStore holds the current access token in memory and mirrors
// every change to durable storage. Safe for concurrent use.
type TokenStore struct {
	storage storage.TokenStorage
	logger  *slog.Logger
	subs    map[int]chan string
	token   string
	mu      sync.RWMutex // защищает token и subs, никогда не держится во время I/O
	writeMu sync.Mutex   // сериализует записи в storage
	nextSub int
}

// NewTokenStore creates a store hydrated from storage.
// A missing token yields an empty (unauthenticated) store.
func NewTokenStore(ctx context.Context, s storage.TokenStorage, logger *slog.Logger) (*TokenStore, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	token, err := s.LoadToken(ctx)
	if err != nil && !errors.Is(err, storage.ErrTokenNotFound) {
		return nil, fmt.Errorf("failed to load token: %w", err)
	}

	logger.DebugContext(ctx, "token store hydrated", "authenticated", token != "")

	return &TokenStore{
		storage: s,
		logger:  logger,
		token:   token,
		subs:    make(map[int]chan string),
	}, nil
}

// Token returns the current token, or "" when none is set
func (s *TokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken persists token and makes it current.
// An empty token is equivalent to ClearToken.
// On storage failure the in-memory token is left unchanged.
func (s *TokenStore) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return s.ClearToken(ctx)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.storage.SaveToken(ctx, token); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}

	s.swap(token)
	s.logger.DebugContext(ctx, "token updated")

	return nil
}

// ClearToken removes the token from memory and durable storage
func (s *TokenStore) ClearToken(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.storage.DeleteToken(ctx); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}

	s.swap("")
	s.logger.DebugContext(ctx, "token cleared")

	return nil
}

// Subscribe returns a stream of token changes and a function that ends the subscription.
// Only the latest value is kept for a slow reader, so writers never block.
func (s *TokenStore) Subscribe() (<-chan string, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan string, 1)
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}

	return ch, cancel
}

// swap делает token текущим и уведомляет подписчиков.
// Читатели ждут только эту операцию, но не storage.
func (s *TokenStore) swap(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.notify(token)
}

// notify вызывается под mu
func (s *TokenStore) notify(token string) {
	for _, ch := range s.subs {
		// выбрасываем значение, которое еще никто не прочитал
		select {
		case <-ch:
		default:
		}
		ch <- token
	}
}
