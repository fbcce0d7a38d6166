package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/pixil98/go-adventure/internal/game"
)

// CraftHandlerFactory creates handlers that combine two held items.
type CraftHandlerFactory struct {
	pub Publisher
}

func NewCraftHandlerFactory(pub Publisher) *CraftHandlerFactory {
	return &CraftHandlerFactory{pub: pub}
}

func (f *CraftHandlerFactory) Spec() *HandlerSpec {
	return nil
}

func (f *CraftHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *CraftHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		first, _ := cmdCtx.Inputs["first"].(string)
		second, _ := cmdCtx.Inputs["second"].(string)
		if first == "" || second == "" {
			return NewUserError("Craft what with what?")
		}

		item, err := cmdCtx.World.Craft(first, second)
		switch {
		case err == nil:
			return reply(f.pub, cmdCtx, fmt.Sprintf("Crafted: %s", item.Name))
		case errors.Is(err, game.ErrItemNotFound):
			return explain(err, "You don't have those items!")
		case errors.Is(err, game.ErrNoRecipe):
			return explain(err, "Incompatible items!")
		case errors.Is(err, game.ErrAlreadyHeld):
			return explain(err, "You already have what those would make!")
		case errors.Is(err, game.ErrCapacityExceeded):
			return explain(err, "Inventory full.")
		default:
			return err
		}
	}, nil
}
