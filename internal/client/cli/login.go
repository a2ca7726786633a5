package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/takenotes/internal/client/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	if err := c.authService.Login(ctx, email, password); err != nil {
		// здесь 401 означает неверные email или пароль, а не истекшую сессию
		if errors.Is(err, api.ErrUnauthorized) {
			return newUserError("login failed, check your email and password", err)
		}
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Println("Your session has been saved.")
	c.io.Println()
	c.io.Println("Run 'takenotes list' to see your notes.")

	return nil
}
