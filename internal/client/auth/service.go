package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/takenotes/internal/client/api"
	"github.com/iudanet/takenotes/internal/validation"
	pkgapi "github.com/iudanet/takenotes/pkg/api"
)

// Compile-time check that AuthService implements Service
var _ Service = (*AuthService)(nil)

// AuthService runs the register/login/logout flows against the API
// and keeps the resulting token in the TokenStore
type AuthService struct {
	apiClient *api.Client
	store     *TokenStore
	logger    *slog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(apiClient *api.Client, store *TokenStore, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AuthService{
		apiClient: apiClient,
		store:     store,
		logger:    logger,
	}
}

// Register validates the form and registers a new user.
// Invalid input is rejected before any request is made.
func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	req := validation.NormalizeRegister(pkgapi.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err := validation.ValidateRegister(req); err != nil {
		return err
	}

	resp, err := s.apiClient.Register(ctx, req)
	if err != nil {
		s.logger.WarnContext(ctx, "registration failed", slog.Any("error", err))
		return err
	}

	s.logger.InfoContext(ctx, "user registered", slog.Int("status", resp.StatusCode))
	return nil
}

// Login validates the form, authenticates and stores the issued token.
// Invalid input is rejected before any request is made.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	req := validation.NormalizeLogin(pkgapi.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err := validation.ValidateLogin(req); err != nil {
		return err
	}

	resp, err := s.apiClient.Login(ctx, req)
	if err != nil {
		s.logger.WarnContext(ctx, "login failed", slog.Any("error", err))
		return err
	}

	if err := s.store.SetToken(ctx, resp.AccessToken); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.InfoContext(ctx, "logged in")
	return nil
}

// Logout forgets the stored token. The server keeps no session to end.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.store.ClearToken(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.logger.InfoContext(ctx, "logged out")
	return nil
}

// Status describes the stored session
func (s *AuthService) Status(ctx context.Context) Session {
	return DescribeToken(s.store.Token())
}
