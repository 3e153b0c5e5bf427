// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package view

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/lendr/lendr/internal/config"
	"github.com/lendr/lendr/internal/config/data"
	"github.com/lendr/lendr/internal/dao"
	"github.com/lendr/lendr/internal/ui"
)

// ErrQuit is returned by the quit command.
var ErrQuit = errors.New("quit requested")

var (
	quitCmds = []string{"q", "q!", "quit", "exit"}
	helpCmds = []string{"h", "help", "?"}
)

// Command interprets command bar input.
type Command struct {
	app     *App
	aliases *config.Aliases
	viewers MetaViewers
}

// NewCommand creates a new command interpreter.
func NewCommand(app *App, aliases *config.Aliases) *Command {
	if aliases == nil {
		aliases = config.NewAliases()
	}
	return &Command{
		app:     app,
		aliases: aliases,
		viewers: loadViewers(),
	}
}

// Commands returns every command name the interpreter accepts, for suggestions.
func (c *Command) Commands() []string {
	cmds := c.aliases.Names()
	cmds = append(cmds, c.viewers.Names()...)
	cmds = append(cmds, quitCmds[2], helpCmds[1])

	return cmds
}

// Run parses and executes a command, e.g. "dev laptop" opens devices searching for laptop.
func (c *Command) Run(cmd string) error {
	cmd = strings.TrimSpace(strings.TrimPrefix(cmd, ":"))
	if cmd == "" {
		return c.defaultCmd()
	}

	name, args, err := parseCommand(cmd)
	if err != nil {
		return err
	}

	switch {
	case slices.Contains(quitCmds, name):
		return ErrQuit
	case slices.Contains(helpCmds, name):
		c.app.helpCmd(nil)
		return nil
	}

	return c.resourceCmd(c.aliases.Resolve(name), strings.Join(args, " "))
}

func (c *Command) defaultCmd() error {
	active := strings.TrimSpace(c.app.Config().Lendr.ActiveView())
	if active == "" {
		active = data.DefaultView
	}
	name, args, err := parseCommand(active)
	if err != nil || name == "" {
		name, args = data.DefaultView, nil
	}

	return c.resourceCmd(c.aliases.Resolve(name), strings.Join(args, " "))
}

// resourceCmd replaces the view stack with the browser of rid.
func (c *Command) resourceCmd(rid, search string) error {
	var id dao.ResourceID
	if err := id.Parse(rid); err != nil {
		return fmt.Errorf("unknown command %q", rid)
	}
	viewer, ok := c.viewers[id.String()]
	if !ok {
		return fmt.Errorf("%w: %s", dao.ErrUnknownResource, rid)
	}

	comp, err := viewer(c.app, &id)
	if err != nil {
		return err
	}
	if search != "" {
		if f, ok := comp.(ui.Filterable); ok {
			f.SetFilter(search)
		}
	}

	c.app.clearStack()
	if err := c.app.inject(comp); err != nil {
		return err
	}
	if short := c.aliases.ShortNames(id.String()); len(short) > 0 {
		c.app.Config().Lendr.SetActiveView(short[0])
	}
	slog.Debug("View switched", "resource", id.String(), "search", search)

	return nil
}

// parseCommand splits a command line into its name and arguments, honoring quotes.
func parseCommand(cmd string) (string, []string, error) {
	parts, err := shellquote.Split(cmd)
	if err != nil {
		return "", nil, fmt.Errorf("invalid command %q: %w", cmd, err)
	}
	if len(parts) == 0 {
		return "", nil, nil
	}

	return strings.ToLower(parts[0]), parts[1:], nil
}
