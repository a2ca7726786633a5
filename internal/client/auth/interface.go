package auth

import (
	"context"
)

//go:generate moq -out service_mock.go . Service

// Service defines the authentication flows used by the CLI
type Service interface {
	// Register creates a new account; it does not log the user in
	Register(ctx context.Context, name, email, password string) error

	// Login authenticates and persists the access token
	Login(ctx context.Context, email, password string) error

	// Logout removes the persisted access token
	Logout(ctx context.Context) error

	// Status describes the current session without contacting the server
	Status(ctx context.Context) Session
}
