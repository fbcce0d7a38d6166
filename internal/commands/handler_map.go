package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/display"
)

// MapHandlerFactory creates handlers that print every room and its exits,
// marking where the player stands.
type MapHandlerFactory struct {
	pub Publisher
}

func NewMapHandlerFactory(pub Publisher) *MapHandlerFactory {
	return &MapHandlerFactory{pub: pub}
}

func (f *MapHandlerFactory) Spec() *HandlerSpec {
	return nil
}

func (f *MapHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *MapHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		w := cmdCtx.World
		return reply(f.pub, cmdCtx, display.Map(w.Graph(), w.Here()))
	}, nil
}
