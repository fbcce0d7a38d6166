package commands

import (
	"fmt"
	"strings"
)

// InputType represents the type of a command input parameter.
type InputType string

const (
	InputTypeString InputType = "string" // Text input (single word if rest=false, multi-word if rest=true)
	InputTypeNumber InputType = "number" // Integer
)

// InputSpec defines an input parameter that a command accepts from user input.
type InputSpec struct {
	Name     string    `json:"name" yaml:"name"`
	Type     InputType `json:"type" yaml:"type"`
	Required bool      `json:"required" yaml:"required"`
	Rest     bool      `json:"rest" yaml:"rest"`                           // If true, captures all remaining input
	Missing  string    `json:"missing,omitempty" yaml:"missing,omitempty"` // Shown when a required input is absent
}

// Command defines a command loaded from JSON or YAML.
type Command struct {
	Handler     string         `json:"handler" yaml:"handler"`
	Aliases     []string       `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Priority    int            `json:"priority,omitempty" yaml:"priority,omitempty"` // Breaks ties between prefix matches
	Category    string         `json:"category,omitempty" yaml:"category,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Usage       string         `json:"usage,omitempty" yaml:"usage,omitempty"` // Shown when too many arguments are given
	Config      map[string]any `json:"config,omitempty" yaml:"config,omitempty"` // Config passed to handler, may contain templates
	Inputs      []InputSpec    `json:"inputs,omitempty" yaml:"inputs,omitempty"` // User input parameters
}

func (c *Command) Validate() error {
	if c.Handler == "" {
		return fmt.Errorf("command handler not set")
	}

	for i, input := range c.Inputs {
		if input.Name == "" {
			return fmt.Errorf("input %d: name is required", i)
		}
		if input.Type == "" {
			return fmt.Errorf("input %q: type is required", input.Name)
		}
		// Validate input type is a known primitive
		switch input.Type {
		case InputTypeString, InputTypeNumber:
			// Valid
		default:
			return fmt.Errorf("input %q: unknown type %q", input.Name, input.Type)
		}
		// Only the last input can have rest=true
		if input.Rest && i != len(c.Inputs)-1 {
			return fmt.Errorf("input %q: only the last input can have rest=true", input.Name)
		}
	}

	for _, alias := range c.Aliases {
		if alias == "" || strings.ContainsAny(alias, " \t") {
			return fmt.Errorf("alias %q must be a single word", alias)
		}
	}

	return nil
}
