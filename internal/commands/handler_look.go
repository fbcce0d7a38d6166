package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-adventure/internal/display"
)

// LookHandlerFactory creates handlers that display the current room, or a
// single item or mob in it.
type LookHandlerFactory struct {
	pub Publisher
}

// NewLookHandlerFactory creates a new LookHandlerFactory.
func NewLookHandlerFactory(pub Publisher) *LookHandlerFactory {
	return &LookHandlerFactory{pub: pub}
}

func (f *LookHandlerFactory) Spec() *HandlerSpec {
	return nil
}

func (f *LookHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *LookHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if target, _ := cmdCtx.Inputs["target"].(string); target != "" {
			return f.showTarget(cmdCtx, target)
		}

		w := cmdCtx.World
		return reply(f.pub, cmdCtx, w.Describe(w.Here()))
	}, nil
}

// showTarget describes an item on the floor or in hand, or a mob in the room.
func (f *LookHandlerFactory) showTarget(cmdCtx *CommandContext, name string) error {
	w := cmdCtx.World
	here := w.Here()

	if it := here.Items.Get(name); it != nil {
		return reply(f.pub, cmdCtx, fmt.Sprintf("On the ground: %s", it))
	}
	if it := w.Player().Inventory().Get(name); it != nil {
		return reply(f.pub, cmdCtx, fmt.Sprintf("You are carrying: %s", it))
	}
	for _, m := range w.Tracker().MobsIn(here) {
		if m.MatchName(name) {
			return reply(f.pub, cmdCtx, fmt.Sprintf("%s is here.", display.Title(m.Name())))
		}
	}

	return NewUserError(fmt.Sprintf("You don't see %s here.", name))
}
