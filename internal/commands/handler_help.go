package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/storage"
)

// HelpHandlerFactory creates handlers that display command help.
// Config:
//   - intro (optional): text shown above the command list
type HelpHandlerFactory struct {
	commands storage.Storer[*Command]
	pub      Publisher
}

// NewHelpHandlerFactory creates a new HelpHandlerFactory.
func NewHelpHandlerFactory(commands storage.Storer[*Command], pub Publisher) *HelpHandlerFactory {
	return &HelpHandlerFactory{commands: commands, pub: pub}
}

func (f *HelpHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Config: []ConfigRequirement{
			{Name: "intro", Required: false},
		},
	}
}

func (f *HelpHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *HelpHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if command, _ := cmdCtx.Inputs["command"].(string); command != "" {
			return f.showCommand(cmdCtx, command)
		}

		var lines []string
		if intro := cmdCtx.Config["intro"]; intro != "" {
			lines = append(lines, intro, "")
		}
		lines = append(lines, fmt.Sprintf("Current room: %s", cmdCtx.Room.Name))
		lines = append(lines, f.listCommands()...)

		return reply(f.pub, cmdCtx, strings.Join(lines, "\n"))
	}, nil
}

// listCommands lists all commands grouped by category.
func (f *HelpHandlerFactory) listCommands() []string {
	all := f.commands.GetAll()

	// Group commands by category
	groups := make(map[string][]string)
	for id, cmd := range all {
		category := cmd.Category
		if category == "" {
			category = "other"
		}
		groups[category] = append(groups[category], string(id))
	}

	// Sort categories and commands within each category
	categories := make([]string, 0, len(groups))
	for cat := range groups {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	lines := []string{"Your command words are:"}
	for _, cat := range categories {
		cmds := groups[cat]
		sort.Strings(cmds)
		lines = append(lines, fmt.Sprintf("  %s: %s", display.Capitalize(cat), strings.Join(cmds, ", ")))
	}
	return lines
}

// showCommand displays detailed help for a specific command.
func (f *HelpHandlerFactory) showCommand(cmdCtx *CommandContext, name string) error {
	name = strings.ToLower(name)
	cmd := f.commands.Get(name)
	if cmd == nil {
		return NewUserError(fmt.Sprintf("Command %q is unknown.", name))
	}

	lines := []string{fmt.Sprintf("%s: %s", name, cmd.Description)}

	// Build usage line from inputs
	parts := []string{name}
	for _, input := range cmd.Inputs {
		if input.Required {
			parts = append(parts, fmt.Sprintf("<%s>", input.Name))
		} else {
			parts = append(parts, fmt.Sprintf("[%s]", input.Name))
		}
	}
	lines = append(lines, fmt.Sprintf("Usage: %s", strings.Join(parts, " ")))

	if len(cmd.Aliases) > 0 {
		lines = append(lines, fmt.Sprintf("Aliases: %s", strings.Join(cmd.Aliases, ", ")))
	}

	return reply(f.pub, cmdCtx, strings.Join(lines, "\n"))
}
