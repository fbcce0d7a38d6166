package commands

import (
	"github.com/pixil98/go-adventure/internal/game"
)

// Stable template-facing types
// These types decouple templates from internal game structs.

// PlayerRef is the template-facing view of the player.
type PlayerRef struct {
	Name   string
	Weight float64
	Items  []string
}

// PlayerRefFrom creates a PlayerRef from a game.Character.
func PlayerRefFrom(char *game.Character) *PlayerRef {
	if char == nil {
		return nil
	}
	ref := &PlayerRef{
		Name:   char.Name(),
		Weight: char.Inventory().Weight(),
	}
	for _, it := range char.Inventory().Items() {
		ref.Items = append(ref.Items, it.Name)
	}
	return ref
}

// RoomRef is the template-facing view of a room.
type RoomRef struct {
	Id          string
	Name        string
	Description string
}

// RoomRefFrom creates a RoomRef from a game.RoomInstance.
func RoomRefFrom(room *game.RoomInstance) *RoomRef {
	if room == nil {
		return nil
	}
	return &RoomRef{
		Id:          room.Id.String(),
		Name:        room.Name(),
		Description: room.Room.Description,
	}
}

// ConfigContext is used to expand command config templates.
type ConfigContext struct {
	Actor  *PlayerRef
	Room   *RoomRef
	Inputs map[string]any // Parsed input values keyed by input name
}
