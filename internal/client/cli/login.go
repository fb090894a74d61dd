package cli

import (
	"context"
	"fmt"
)

func (c *Cli) RunLogin(ctx context.Context) error {
	fmt.Println("=== Login ===")
	fmt.Println()

	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Println()
	fmt.Println("Authenticating...")

	if err := c.session.Login(ctx, email, password); err != nil {
		return FriendlyError(err)
	}

	identity, _ := c.session.Identity()

	fmt.Println()
	fmt.Println("✓ Login successful!")
	fmt.Printf("Logged in as %s <%s>\n", identity.Name, identity.Email)

	return nil
}
