package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/game"
)

// MoveHandlerFactory creates handlers that move the player through an exit.
// Config:
//   - direction (optional): a fixed direction for shortcut commands like
//     "north". Without it the "direction" input is used.
// The world narrates the room the player arrives in.
type MoveHandlerFactory struct{}

func (f *MoveHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Config: []ConfigRequirement{
			{Name: "direction", Required: false},
		},
	}
}

func (f *MoveHandlerFactory) ValidateConfig(config map[string]any) error {
	if v, ok := config["direction"]; ok {
		if s, ok := v.(string); !ok || s == "" {
			return fmt.Errorf("direction must be a non-empty string")
		}
	}
	return nil
}

func (f *MoveHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		direction := cmdCtx.Config["direction"]
		if direction == "" {
			direction, _ = cmdCtx.Inputs["direction"].(string)
		}
		if direction == "" {
			return NewUserError("Go where?")
		}

		w := cmdCtx.World
		unknown := NewUserError("I don't know that direction.\n" + display.ExitList(w.Graph(), w.Here()))

		dir, err := game.ParseDirection(direction)
		if err != nil {
			return unknown
		}

		_, err = w.Go(dir)
		if errors.Is(err, game.ErrNoExit) {
			return unknown
		}
		return err
	}, nil
}
