package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/template"

	"catalogkeeper/internal/client/catalog"
)

func (c *Cli) RunList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	query := fs.String("query", "", "Free-text filter on name and description")
	category := fs.String("category", "", "Filter by category")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.store.FetchAll(ctx); err != nil {
		return FriendlyError(err)
	}

	visible := catalog.Filter(c.store.Records(), *query, *category)

	tmpl, err := template.New("products").Parse(productListTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse product list template: %w", err)
	}

	if err := tmpl.Execute(os.Stdout, visible); err != nil {
		return fmt.Errorf("failed to render product list: %w", err)
	}

	return nil
}
