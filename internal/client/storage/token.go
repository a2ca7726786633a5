package storage

import (
	"context"
)

// TokenStorage defines the durable layer behind the token store.
// It keeps one opaque string and knows nothing about its meaning.
type TokenStorage interface {
	// SaveToken stores the token as-is, replacing any previous value
	SaveToken(ctx context.Context, token string) error

	// LoadToken returns the stored token
	// Returns ErrTokenNotFound if nothing was saved yet
	LoadToken(ctx context.Context) (string, error)

	// DeleteToken removes the stored token (logout)
	// Deleting a missing token is not an error
	DeleteToken(ctx context.Context) error
}
