package cli

import (
	"github.com/iudanet/takenotes/internal/client/notes"
)

func (c *Cli) runColors() error {
	return c.render("colors", colorsTemplate, notes.Palette)
}
