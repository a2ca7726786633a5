package cli

import (
	"fmt"
	"io"
	"text/template"

	"github.com/iudanet/takenotes/internal/client/auth"
	"github.com/iudanet/takenotes/internal/client/iocli"
	"github.com/iudanet/takenotes/internal/client/notes"
)

type Cli struct {
	io           iocli.IO
	authService  auth.Service
	notesService notes.Service
}

func New(ioCli iocli.IO, authService auth.Service, notesService notes.Service) *Cli {
	return &Cli{
		io:           ioCli,
		authService:  authService,
		notesService: notesService,
	}
}

var templateFuncs = template.FuncMap{
	"colorName": notes.ColorName,
	"preview":   preview,
}

// render выполняет шаблон вывода и пишет результат в c.io
func (c *Cli) render(name, text string, data any) error {
	tmpl, err := template.New(name).Funcs(templateFuncs).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse %s template: %w", name, err)
	}
	if err := tmpl.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

// PrintUsage writes the command reference
func PrintUsage(w io.Writer) {
	_, _ = io.WriteString(w, usageTemplate)
}

// preview укорачивает текст для списка
func preview(s string) string {
	const limit = 50
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}
