package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/display"
)

// InventoryHandlerFactory creates handlers that list the player's inventory.
type InventoryHandlerFactory struct {
	pub Publisher
}

// NewInventoryHandlerFactory creates a new InventoryHandlerFactory.
func NewInventoryHandlerFactory(pub Publisher) *InventoryHandlerFactory {
	return &InventoryHandlerFactory{pub: pub}
}

func (f *InventoryHandlerFactory) Spec() *HandlerSpec {
	return nil
}

func (f *InventoryHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *InventoryHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		return reply(f.pub, cmdCtx, display.Inventory(cmdCtx.World.Player().Inventory()))
	}, nil
}
