package cli

import (
	"context"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	session := c.authService.Status(ctx)
	if !session.Authenticated {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'takenotes login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	if session.Subject != "" {
		c.io.Printf("User: %s\n", session.Subject)
	}

	if session.ExpiresAt.IsZero() {
		// непрозрачные токены и JWT без exp проверяет только сервер
		c.io.Println("Token expiry: unknown")
		return nil
	}

	c.io.Printf("Token expires: %s\n", session.ExpiresAt.Format(time.RFC3339))
	if session.Expired(time.Now()) {
		c.io.Println("⚠️  Token has expired. Please login again.")
		return nil
	}
	c.io.Printf("Time remaining: %s\n", time.Until(session.ExpiresAt).Round(time.Second))

	return nil
}
