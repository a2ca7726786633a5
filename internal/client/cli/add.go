package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

const addUsage = "Usage: takenotes add [--title TITLE] [--content TEXT | --file PATH] [--color NAME|#RRGGBB]"

type addOptions struct {
	title    string
	content  string
	file     string
	color    string
	setFlags map[string]bool
}

func parseAddFlags(args []string) (*addOptions, error) {
	opts := &addOptions{setFlags: map[string]bool{}}

	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	// ошибку выводит вызывающий код
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.title, "title", "", "note title")
	fs.StringVar(&opts.content, "content", "", "note content")
	fs.StringVar(&opts.file, "file", "", "read note content from a file")
	fs.StringVar(&opts.color, "color", "", "background color: palette name or #RRGGBB")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, errors.New(addUsage)
		}
		return nil, fmt.Errorf("%w. %s", err, addUsage)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument: %s. %s", fs.Arg(0), addUsage)
	}
	fs.Visit(func(f *flag.Flag) { opts.setFlags[f.Name] = true })

	if opts.setFlags["content"] && opts.setFlags["file"] {
		return nil, fmt.Errorf("--content and --file are mutually exclusive. %s", addUsage)
	}

	return opts, nil
}

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	opts, err := parseAddFlags(args)
	if err != nil {
		return err
	}

	c.io.Println("=== Add Note ===")
	c.io.Println()

	interactive := len(opts.setFlags) == 0

	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		opts.content = strings.TrimRight(string(data), "\r\n")
	}

	if !opts.setFlags["title"] {
		if opts.title, err = c.io.ReadInput("Title: "); err != nil {
			return fmt.Errorf("failed to read title: %w", err)
		}
	}

	if !opts.setFlags["content"] && !opts.setFlags["file"] {
		if opts.content, err = c.io.ReadInput("Content: "); err != nil {
			return fmt.Errorf("failed to read content: %w", err)
		}
	}

	if interactive {
		if opts.color, err = c.io.ReadInput("Color (optional, see 'takenotes colors'): "); err != nil {
			return fmt.Errorf("failed to read color: %w", err)
		}
	}

	note, err := c.notesService.Create(ctx, opts.title, opts.content, opts.color)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Note created!")
	c.io.Printf("ID:    %s\n", note.ID)
	if note.Title != "" {
		c.io.Printf("Title: %s\n", note.Title)
	}
	if note.BgColor != "" {
		c.io.Printf("Color: %s\n", note.BgColor)
	}

	return nil
}
