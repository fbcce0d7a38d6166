package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/pixil98/go-adventure/internal/game"
)

// DropHandlerFactory creates handlers that move an item from the player's
// inventory to the floor of the room.
type DropHandlerFactory struct {
	pub Publisher
}

// NewDropHandlerFactory creates a new DropHandlerFactory.
func NewDropHandlerFactory(pub Publisher) *DropHandlerFactory {
	return &DropHandlerFactory{pub: pub}
}

func (f *DropHandlerFactory) Spec() *HandlerSpec {
	return nil
}

func (f *DropHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *DropHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		name, _ := cmdCtx.Inputs["item"].(string)
		if name == "" {
			return NewUserError("Drop what?")
		}

		item, err := cmdCtx.World.Drop(name)
		if errors.Is(err, game.ErrItemNotFound) {
			return explain(err, "Item not found: %s", name)
		}
		if errors.Is(err, game.ErrAlreadyHeld) {
			return explain(err, "There is already %s here.", name)
		}
		if err != nil {
			return err
		}
		return reply(f.pub, cmdCtx, fmt.Sprintf("%s dropped.", item.Name))
	}, nil
}
