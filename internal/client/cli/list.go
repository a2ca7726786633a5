package cli

import (
	"context"
)

func (c *Cli) runList(ctx context.Context) error {
	notes, err := c.notesService.Load(ctx)
	if err != nil {
		return err
	}

	return c.render("notes", notesListTemplate, notes)
}
