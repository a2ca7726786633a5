package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/takenotes/internal/client/api"
	"github.com/iudanet/takenotes/internal/client/auth"
	"github.com/iudanet/takenotes/internal/validation"
)

func TestCli_Register(t *testing.T) {
	term := &fakeTerminal{
		inputs:  []string{"Alice", "alice@example.com"},
		secrets: []string{"password123", "password123"},
	}
	mockAuth := &auth.ServiceMock{
		RegisterFunc: func(ctx context.Context, name, email, password string) error {
			return nil
		},
	}
	c := &Cli{io: newMockIO(term), authService: mockAuth}

	err := c.Run(context.Background(), "register", nil)
	require.NoError(t, err)

	calls := mockAuth.RegisterCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Alice", calls[0].Name)
	assert.Equal(t, "alice@example.com", calls[0].Email)
	assert.Equal(t, "password123", calls[0].Password)

	assert.Contains(t, term.out.String(), "Registration successful")
	assert.Contains(t, term.out.String(), "Please run 'takenotes login'")
}

func TestCli_Register_PasswordMismatch(t *testing.T) {
	term := &fakeTerminal{
		inputs:  []string{"Alice", "alice@example.com"},
		secrets: []string{"password123", "password124"},
	}
	mockAuth := &auth.ServiceMock{}
	c := &Cli{io: newMockIO(term), authService: mockAuth}

	err := c.Run(context.Background(), "register", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "passwords do not match")
	assert.Empty(t, mockAuth.RegisterCalls())
}

func TestCli_Register_ValidationError(t *testing.T) {
	term := &fakeTerminal{
		inputs:  []string{"Al", "alice@example.com"},
		secrets: []string{"password123", "password123"},
	}
	mockAuth := &auth.ServiceMock{
		RegisterFunc: func(ctx context.Context, name, email, password string) error {
			return fmt.Errorf("%w: Please enter your name.", validation.ErrInvalid)
		},
	}
	c := &Cli{io: newMockIO(term), authService: mockAuth}

	err := c.Run(context.Background(), "register", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrInvalid)
	assert.Contains(t, err.Error(), "Please enter your name.")
	assert.NotContains(t, term.out.String(), "Registration successful")
}

func TestCli_Register_ReadError(t *testing.T) {
	term := &fakeTerminal{}
	mockAuth := &auth.ServiceMock{}
	c := &Cli{io: newMockIO(term), authService: mockAuth}

	err := c.Run(context.Background(), "register", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read name")
	assert.Empty(t, mockAuth.RegisterCalls())
}

func TestCli_Login(t *testing.T) {
	term := &fakeTerminal{
		inputs:  []string{"alice@example.com"},
		secrets: []string{"password123"},
	}
	mockAuth := &auth.ServiceMock{
		LoginFunc: func(ctx context.Context, email, password string) error {
			return nil
		},
	}
	c := &Cli{io: newMockIO(term), authService: mockAuth}

	err := c.Run(context.Background(), "login", nil)
	require.NoError(t, err)

	calls := mockAuth.LoginCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "alice@example.com", calls[0].Email)
	assert.Equal(t, "password123", calls[0].Password)

	assert.Contains(t, term.out.String(), "Login successful")
	assert.Contains(t, term.out.String(), "takenotes list")
}

func TestCli_Login_WrongCredentials(t *testing.T) {
	term := &fakeTerminal{
		inputs:  []string{"alice@example.com"},
		secrets: []string{"password123"},
	}
	mockAuth := &auth.ServiceMock{
		LoginFunc: func(ctx context.Context, email, password string) error {
			return &api.StatusError{StatusCode: 401, Message: "Invalid credentials"}
		},
	}
	c := &Cli{io: newMockIO(term), authService: mockAuth}

	err := c.Run(context.Background(), "login", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrUnauthorized)
	assert.Contains(t, err.Error(), "check your email and password")
	assert.NotContains(t, err.Error(), "session expired")
}

func TestCli_Login_ServerUnreachable(t *testing.T) {
	term := &fakeTerminal{
		inputs:  []string{"alice@example.com"},
		secrets: []string{"password123"},
	}
	mockAuth := &auth.ServiceMock{
		LoginFunc: func(ctx context.Context, email, password string) error {
			return fmt.Errorf("%w: %w", api.ErrNetwork, errors.New("connection refused"))
		},
	}
	c := &Cli{io: newMockIO(term), authService: mockAuth}

	err := c.Run(context.Background(), "login", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrNetwork)
	assert.Contains(t, err.Error(), "server unreachable")
}

func TestCli_Logout(t *testing.T) {
	term := &fakeTerminal{}
	mockAuth := &auth.ServiceMock{
		LogoutFunc: func(ctx context.Context) error { return nil },
	}
	c := &Cli{io: newMockIO(term), authService: mockAuth}

	require.NoError(t, c.Run(context.Background(), "logout", nil))

	assert.Len(t, mockAuth.LogoutCalls(), 1)
	assert.Contains(t, term.out.String(), "Logout successful")
}

func TestCli_Logout_Error(t *testing.T) {
	term := &fakeTerminal{}
	mockAuth := &auth.ServiceMock{
		LogoutFunc: func(ctx context.Context) error { return errors.New("database closed") },
	}
	c := &Cli{io: newMockIO(term), authService: mockAuth}

	err := c.Run(context.Background(), "logout", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "logout failed: database closed")
}

func TestCli_Status(t *testing.T) {
	tests := []struct {
		name     string
		session  auth.Session
		contains []string
		absent   []string
	}{
		{
			name:     "not authenticated",
			session:  auth.Session{},
			contains: []string{"Status: Not authenticated", "takenotes login"},
		},
		{
			name:     "opaque token",
			session:  auth.Session{Authenticated: true, Opaque: true},
			contains: []string{"Status: Authenticated", "Token expiry: unknown"},
			absent:   []string{"User:"},
		},
		{
			name: "valid jwt",
			session: auth.Session{
				Authenticated: true,
				Subject:       "user-1",
				ExpiresAt:     time.Now().Add(time.Hour),
			},
			contains: []string{"Status: Authenticated", "User: user-1", "Token expires:", "Time remaining:"},
			absent:   []string{"expired"},
		},
		{
			name: "expired jwt",
			session: auth.Session{
				Authenticated: true,
				Subject:       "user-1",
				ExpiresAt:     time.Now().Add(-time.Hour),
			},
			contains: []string{"Token has expired"},
			absent:   []string{"Time remaining:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := &fakeTerminal{}
			mockAuth := &auth.ServiceMock{
				StatusFunc: func(ctx context.Context) auth.Session { return tt.session },
			}
			c := &Cli{io: newMockIO(term), authService: mockAuth}

			require.NoError(t, c.Run(context.Background(), "status", nil))

			for _, s := range tt.contains {
				assert.Contains(t, term.out.String(), s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, term.out.String(), s)
			}
		})
	}
}
