package cli

import (
	"context"
	"fmt"
)

func (c *Cli) RunLogout(ctx context.Context) error {
	// The catalog is scoped to the identity, so it goes down with the
	// session.
	c.session.Logout(ctx)
	c.store.Reset()

	fmt.Println("✓ Logged out.")
	return nil
}
