package cli

import (
	"context"
	"fmt"
)

func (c *Cli) RunSignup(ctx context.Context) error {
	fmt.Println("=== Sign Up ===")
	fmt.Println()

	name, err := readInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}

	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	fmt.Println()
	fmt.Println("Creating account...")

	// Signup continues into a login on success, so a valid session is
	// already in place when this returns.
	if err := c.session.Signup(ctx, name, email, password); err != nil {
		return FriendlyError(err)
	}

	fmt.Println()
	fmt.Println("✓ Account created!")
	fmt.Printf("Logged in as %s <%s>\n", name, email)

	return nil
}
