package cli

import (
	"context"
	"fmt"
)

func (c *Cli) RunDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing product ID. Usage: catalogkeeper delete <id>")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	fmt.Println("=== Delete Product ===")
	fmt.Println()

	confirm, err := readInput(fmt.Sprintf("Are you sure you want to delete product %d? (yes/no): ", id))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if confirm != "yes" && confirm != "y" {
		fmt.Println()
		fmt.Println("Deletion cancelled.")
		return nil
	}

	if err := c.store.Delete(ctx, id); err != nil {
		return FriendlyError(err)
	}

	fmt.Println()
	fmt.Println("✓ Product deleted successfully!")

	return nil
}
