package commands

import (
	"context"
	"errors"

	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/game"
)

// AttackHandlerFactory creates handlers that kill a mob in the player's room.
// Config:
//   - no_weapon (optional): message shown when the player is unarmed
type AttackHandlerFactory struct {
	pub Publisher
}

func NewAttackHandlerFactory(pub Publisher) *AttackHandlerFactory {
	return &AttackHandlerFactory{pub: pub}
}

func (f *AttackHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Config: []ConfigRequirement{
			{Name: "no_weapon", Required: false},
		},
	}
}

func (f *AttackHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *AttackHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		name, _ := cmdCtx.Inputs["mob"].(string)
		if name == "" {
			return NewUserError("Attack what?")
		}

		mob, dropped, err := cmdCtx.World.Attack(name)
		switch {
		case err == nil:
			return reply(f.pub, cmdCtx, display.Death(mob.Name(), dropped))
		case errors.Is(err, game.ErrEntityNotFound):
			return explain(err, "There is no such mob here.")
		case errors.Is(err, game.ErrAlreadyHeld):
			return explain(err, "The %s's loot would be lost here.", name)
		case errors.Is(err, game.ErrNoWeapon):
			msg := cmdCtx.Config["no_weapon"]
			if msg == "" {
				msg = "You need a weapon to kill mobs!"
			}
			return explain(err, "%s", msg)
		default:
			return err
		}
	}, nil
}
