package cli

import (
	"context"
	"fmt"
	"os"
	"text/template"

	"catalogkeeper/internal/models"
)

type statusView struct {
	Identity      models.Identity
	Authenticated bool
}

func (c *Cli) RunStatus(ctx context.Context) error {
	identity, ok := c.session.Identity()

	view := statusView{
		Identity:      identity,
		Authenticated: ok,
	}

	tmpl, err := template.New("status").Parse(statusTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse status template: %w", err)
	}

	if err := tmpl.Execute(os.Stdout, view); err != nil {
		return fmt.Errorf("failed to render status: %w", err)
	}

	return nil
}
