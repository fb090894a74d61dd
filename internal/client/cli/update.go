package cli

import (
	"context"
	"fmt"
)

func (c *Cli) RunUpdate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing product ID. Usage: catalogkeeper update <id>")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	fmt.Println("=== Update Product ===")
	fmt.Println()

	draft, err := promptDraft()
	if err != nil {
		return err
	}

	if err := c.store.Update(ctx, id, draft); err != nil {
		return FriendlyError(err)
	}

	fmt.Println()
	fmt.Println("✓ Product updated successfully!")

	return nil
}
