package cli

import (
	"context"
	"fmt"
)

// Run executes a single command. args excludes the command name.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	var err error

	switch command {
	case "register":
		err = c.runRegister(ctx)
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "list":
		err = c.runList(ctx)
	case "get":
		err = c.runGet(ctx, args)
	case "add":
		err = c.runAdd(ctx, args)
	case "colors":
		err = c.runColors()
	default:
		PrintUsage(c.io)
		return fmt.Errorf("unknown command: %s", command)
	}

	return describeError(err)
}
