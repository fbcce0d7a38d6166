package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/pixil98/go-adventure/internal/game"
)

// PickupHandlerFactory creates handlers that move an item from the room
// into the player's inventory.
type PickupHandlerFactory struct {
	pub Publisher
}

// NewPickupHandlerFactory creates a new PickupHandlerFactory.
func NewPickupHandlerFactory(pub Publisher) *PickupHandlerFactory {
	return &PickupHandlerFactory{pub: pub}
}

func (f *PickupHandlerFactory) Spec() *HandlerSpec {
	return nil
}

func (f *PickupHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *PickupHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		name, _ := cmdCtx.Inputs["item"].(string)
		if name == "" {
			return NewUserError("Pick what?")
		}

		item, err := cmdCtx.World.Pickup(name)
		switch {
		case err == nil:
			return reply(f.pub, cmdCtx, fmt.Sprintf("%s picked up.", item.Name))
		case errors.Is(err, game.ErrItemNotFound):
			return explain(err, "%s is not in the room.", name)
		case errors.Is(err, game.ErrUnpickable):
			return explain(err, "%s is not pickable.", name)
		case errors.Is(err, game.ErrAlreadyHeld):
			return explain(err, "You already have %s.", name)
		case errors.Is(err, game.ErrCapacityExceeded):
			return explain(err, "Inventory full.")
		default:
			return err
		}
	}, nil
}
