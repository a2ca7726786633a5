package cli

import (
	"context"
	"fmt"
)

// runGet показывает одну заметку. В API нет запроса одной заметки, поэтому ищем в общем списке.
func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing note ID. Usage: takenotes get <id>")
	}

	id := args[0]

	notes, err := c.notesService.Load(ctx)
	if err != nil {
		return err
	}

	for _, note := range notes {
		if note.ID == id {
			return c.render("note", noteTemplate, note)
		}
	}

	return fmt.Errorf("note not found with ID: %s", id)
}
