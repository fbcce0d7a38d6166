package commands

import (
	"context"
	"errors"

	"github.com/pixil98/go-adventure/internal/game"
)

// BackHandlerFactory creates handlers that return the player to the room
// they came from.
type BackHandlerFactory struct{}

func (f *BackHandlerFactory) Spec() *HandlerSpec {
	return nil
}

func (f *BackHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *BackHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		_, err := cmdCtx.World.Back()
		if errors.Is(err, game.ErrNoHistory) {
			return explain(err, "Can't go back.")
		}
		return err
	}, nil
}
