package cli

import (
	"context"
	"fmt"
)

func (c *Cli) RunAdd(ctx context.Context) error {
	fmt.Println("=== Add Product ===")
	fmt.Println()

	draft, err := promptDraft()
	if err != nil {
		return err
	}

	if err := c.store.Create(ctx, draft); err != nil {
		return FriendlyError(err)
	}

	fmt.Println()
	fmt.Println("✓ Product added successfully!")

	return nil
}
