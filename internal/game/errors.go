package game

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure the game reports to a caller wraps one of these.
var (
	ErrNotFound         = errors.New("not found")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrUnpickable       = errors.New("item cannot be picked up")
	ErrInvalidState     = errors.New("invalid state")
)

var (
	ErrEntityNotFound = fmt.Errorf("entity %w", ErrNotFound)
	ErrItemNotFound   = fmt.Errorf("item %w", ErrNotFound)
	ErrNoExit         = fmt.Errorf("exit %w", ErrNotFound)
	ErrNoRecipe       = fmt.Errorf("recipe %w", ErrNotFound)
	ErrNoHistory      = fmt.Errorf("%w: no previous room", ErrInvalidState)
	ErrNoWeapon       = fmt.Errorf("%w: no weapon held", ErrInvalidState)
	ErrAlreadyHeld    = fmt.Errorf("%w: item already held", ErrInvalidState)
)
