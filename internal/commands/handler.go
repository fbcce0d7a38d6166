package commands

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
)

// ParsedInput represents a validated and parsed command input.
type ParsedInput struct {
	Spec  *InputSpec
	Raw   string // Original player input
	Value any    // Parsed value: int for number, string for string
}

// CommandContext is everything a compiled command sees when it runs.
type CommandContext struct {
	World   *game.World
	Subject string // Narration subject of the session issuing the command
	Actor   *PlayerRef
	Room    *RoomRef
	Inputs  map[string]any
	Config  map[string]string // Expanded config values
}

// CommandFunc is the signature for compiled command functions.
type CommandFunc func(ctx context.Context, cmdCtx *CommandContext) error

// ConfigRequirement declares a config key a handler understands.
type ConfigRequirement struct {
	Name     string
	Required bool
}

// HandlerSpec declares what a handler needs from a command definition.
type HandlerSpec struct {
	Config []ConfigRequirement
}

// HandlerFactory creates CommandFuncs from command configurations.
type HandlerFactory interface {
	// Spec returns the handler's requirements, or nil if it accepts anything.
	Spec() *HandlerSpec
	// ValidateConfig validates handler specific config rules.
	ValidateConfig(config map[string]any) error
	// Create creates a CommandFunc.
	Create() (CommandFunc, error)
}

// Publisher provides the ability to publish messages to subjects
type Publisher interface {
	Publish(subject string, data []byte) error
}

// compiledCommand holds a command that's been validated and compiled.
type compiledCommand struct {
	id      storage.Identifier
	cmd     *Command
	cmdFunc CommandFunc
}

type Handler struct {
	store     storage.Storer[*Command]
	factories map[string]HandlerFactory
	compiled  map[storage.Identifier]*compiledCommand
}

func NewHandler(c storage.Storer[*Command]) *Handler {
	return &Handler{
		store:     c,
		factories: make(map[string]HandlerFactory),
		compiled:  make(map[storage.Identifier]*compiledCommand),
	}
}

// NewDefaultHandler creates a Handler with every built-in handler registered
// and all commands in c compiled.
func NewDefaultHandler(c storage.Storer[*Command], pub Publisher) (*Handler, error) {
	h := NewHandler(c)

	factories := map[string]HandlerFactory{
		"attack":    NewAttackHandlerFactory(pub),
		"back":      &BackHandlerFactory{},
		"craft":     NewCraftHandlerFactory(pub),
		"drop":      NewDropHandlerFactory(pub),
		"help":      NewHelpHandlerFactory(c, pub),
		"inventory": NewInventoryHandlerFactory(pub),
		"look":      NewLookHandlerFactory(pub),
		"map":       NewMapHandlerFactory(pub),
		"message":   NewMessageHandlerFactory(pub),
		"move":      &MoveHandlerFactory{},
		"pickup":    NewPickupHandlerFactory(pub),
		"quit":      &QuitHandlerFactory{},
	}
	for name, f := range factories {
		if err := h.RegisterFactory(name, f); err != nil {
			return nil, err
		}
	}

	if err := h.CompileAll(); err != nil {
		return nil, err
	}
	return h, nil
}

// RegisterFactory registers a handler factory by name.
// The name must match the "handler" field in command definitions.
func (h *Handler) RegisterFactory(name string, factory HandlerFactory) error {
	if name == "" {
		return fmt.Errorf("handler name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("handler factory cannot be nil")
	}
	if _, exists := h.factories[name]; exists {
		return fmt.Errorf("handler factory %q already registered", name)
	}
	h.factories[name] = factory
	return nil
}

// CompileAll compiles all commands from the store.
// Call this after all handler factories have been registered.
func (h *Handler) CompileAll() error {
	all := h.store.GetAll()

	// Compile in a fixed order so alias conflicts are reported consistently.
	ids := make([]storage.Identifier, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		err := h.compile(id, all[id])
		if err != nil {
			return fmt.Errorf("compiling command %q: %w", id, err)
		}
	}
	return nil
}

func (h *Handler) compile(id storage.Identifier, cmd *Command) error {
	factory, ok := h.factories[cmd.Handler]
	if !ok {
		return fmt.Errorf("unknown handler %q", cmd.Handler)
	}

	if err := h.validateSpec(cmd, factory.Spec()); err != nil {
		return err
	}

	if err := factory.ValidateConfig(cmd.Config); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	id = storage.Identifier(strings.ToLower(id.String()))
	if existing, ok := h.compiled[id]; ok {
		return fmt.Errorf("command %q conflicts with %q", id, existing.id)
	}
	for _, alias := range cmd.Aliases {
		key := storage.Identifier(strings.ToLower(alias))
		if existing, ok := h.compiled[key]; ok || key == id {
			name := id
			if ok {
				name = existing.id
			}
			return fmt.Errorf("alias %q conflicts with %q", alias, name)
		}
	}

	cmdFunc, err := factory.Create()
	if err != nil {
		return fmt.Errorf("creating handler: %w", err)
	}

	compiled := &compiledCommand{
		id:      id,
		cmd:     cmd,
		cmdFunc: cmdFunc,
	}
	h.compiled[id] = compiled
	for _, alias := range cmd.Aliases {
		h.compiled[storage.Identifier(strings.ToLower(alias))] = compiled
	}
	return nil
}

// validateSpec checks a command's config against what its handler declares.
func (h *Handler) validateSpec(cmd *Command, spec *HandlerSpec) error {
	if spec == nil {
		return nil
	}

	known := make(map[string]bool, len(spec.Config))
	for _, req := range spec.Config {
		known[req.Name] = true
		if _, ok := cmd.Config[req.Name]; !ok && req.Required {
			return fmt.Errorf("missing required config key %q", req.Name)
		}
	}

	keys := make([]string, 0, len(cmd.Config))
	for k := range cmd.Config {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if !known[k] {
			return fmt.Errorf("unknown config key %q", k)
		}
	}

	return nil
}

// resolve finds the command for a typed word. Exact names and aliases win,
// then unique prefixes, with Priority breaking ties between prefixes.
func (h *Handler) resolve(input string) (*compiledCommand, error) {
	input = strings.ToLower(input)
	if c, ok := h.compiled[storage.Identifier(input)]; ok {
		return c, nil
	}

	keys := make([]string, 0, len(h.compiled))
	for key := range h.compiled {
		if strings.HasPrefix(key.String(), input) {
			keys = append(keys, key.String())
		}
	}
	slices.Sort(keys)

	var best []*compiledCommand
	var names []string
	for _, key := range keys {
		c := h.compiled[storage.Identifier(key)]
		if slices.Contains(best, c) {
			continue
		}
		switch {
		case len(best) == 0 || c.cmd.Priority > best[0].cmd.Priority:
			best = []*compiledCommand{c}
			names = []string{key}
		case c.cmd.Priority == best[0].cmd.Priority:
			best = append(best, c)
			names = append(names, key)
		}
	}

	switch len(best) {
	case 0:
		return nil, NewUserError("I don't know what you mean...")
	case 1:
		return best[0], nil
	default:
		return nil, NewUserError(fmt.Sprintf("Did you mean: %s?", strings.Join(names, ", ")))
	}
}

// Exec runs a typed command against w on behalf of the session whose
// narration goes to subject.
func (h *Handler) Exec(ctx context.Context, w *game.World, subject string, cmdName string, rawArgs ...string) error {
	compiled, err := h.resolve(cmdName)
	if err != nil {
		return err
	}
	cmd := compiled.cmd

	hasRest := len(cmd.Inputs) > 0 && cmd.Inputs[len(cmd.Inputs)-1].Rest
	if cmd.Usage != "" && !hasRest && len(rawArgs) > len(cmd.Inputs) {
		return NewUserError(cmd.Usage)
	}

	parsed, err := h.parseInputs(cmd.Inputs, rawArgs)
	if err != nil {
		return err
	}
	inputs := make(map[string]any, len(parsed))
	for _, p := range parsed {
		inputs[p.Spec.Name] = p.Value
	}

	actor := PlayerRefFrom(w.Player())
	room := RoomRefFrom(w.Here())

	config, err := h.expandConfig(cmd.Config, actor, room, inputs)
	if err != nil {
		return fmt.Errorf("expanding config for %q: %w", compiled.id, err)
	}

	return compiled.cmdFunc(ctx, &CommandContext{
		World:   w,
		Subject: subject,
		Actor:   actor,
		Room:    room,
		Inputs:  inputs,
		Config:  config,
	})
}

// parseInputs validates raw string arguments against input specs.
func (h *Handler) parseInputs(specs []InputSpec, rawArgs []string) ([]ParsedInput, error) {
	requiredCount := 0
	for _, spec := range specs {
		if spec.Required {
			requiredCount++
		}
	}

	if len(rawArgs) < requiredCount {
		// Prefer the first missing input's own message.
		for i := len(rawArgs); i < len(specs); i++ {
			if specs[i].Required && specs[i].Missing != "" {
				return nil, NewUserError(specs[i].Missing)
			}
		}
		return nil, NewUserError(fmt.Sprintf("Expected at least %d argument(s), got %d.", requiredCount, len(rawArgs)))
	}

	hasRest := len(specs) > 0 && specs[len(specs)-1].Rest
	if !hasRest && len(rawArgs) > len(specs) {
		return nil, NewUserError(fmt.Sprintf("Expected at most %d argument(s), got %d.", len(specs), len(rawArgs)))
	}

	inputs := make([]ParsedInput, 0, len(specs))
	argIndex := 0

	for i := range specs {
		spec := &specs[i]

		if argIndex >= len(rawArgs) {
			continue
		}

		var raw string
		if spec.Rest {
			raw = strings.Join(rawArgs[argIndex:], " ")
			argIndex = len(rawArgs)
		} else {
			raw = rawArgs[argIndex]
			argIndex++
		}

		value, err := h.parseValue(spec.Type, raw)
		if err != nil {
			return nil, err
		}

		inputs = append(inputs, ParsedInput{
			Spec:  spec,
			Raw:   raw,
			Value: value,
		})
	}

	return inputs, nil
}

// parseValue parses a raw string into the appropriate type.
func (h *Handler) parseValue(inputType InputType, raw string) (any, error) {
	switch inputType {
	case InputTypeString:
		return raw, nil

	case InputTypeNumber:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, NewUserError(fmt.Sprintf("%q is not a valid number.", raw))
		}
		return n, nil

	default:
		return nil, fmt.Errorf("unknown parameter type %q", inputType)
	}
}

// expandConfig expands every config value as a template over the actor,
// the actor's room and the parsed inputs.
func (h *Handler) expandConfig(config map[string]any, actor *PlayerRef, room *RoomRef, inputs map[string]any) (map[string]string, error) {
	data := &ConfigContext{
		Actor:  actor,
		Room:   room,
		Inputs: inputs,
	}

	expanded := make(map[string]string, len(config))
	for k, v := range config {
		s, ok := v.(string)
		if !ok {
			expanded[k] = fmt.Sprint(v)
			continue
		}
		out, err := expandInputTemplate(s, data)
		if err != nil {
			return nil, fmt.Errorf("config %q: %w", k, err)
		}
		expanded[k] = out
	}
	return expanded, nil
}

// reply publishes msg to the issuing session.
func reply(pub Publisher, cmdCtx *CommandContext, msg string) error {
	if pub == nil {
		return nil
	}
	return pub.Publish(cmdCtx.Subject, []byte(msg))
}
