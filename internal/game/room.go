package game

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

// On-enter hook kinds a room may declare.
const (
	EnterPortal  = "portal"  // announces the goal room
	EnterScatter = "scatter" // throws the entrant to a random room
)

// Room represents a location loaded from asset files.
type Room struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`

	// Exits maps a direction label to the destination room. Edges are
	// one-way; a return path must be declared on the destination.
	Exits map[string]storage.SmartIdentifier[*Room] `json:"exits,omitempty" yaml:"exits,omitempty"`

	// Items lists the items placed on the floor when a game starts
	Items []storage.SmartIdentifier[*Item] `json:"items,omitempty" yaml:"items,omitempty"`

	// OnEnter names the hook run when an entity enters
	OnEnter string `json:"on_enter,omitempty" yaml:"on_enter,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (r *Room) Validate() error {
	el := errors.NewErrorList()

	if r.Name == "" {
		el.Add(fmt.Errorf("room name is required"))
	}

	for dir, exit := range r.Exits {
		if _, err := ParseDirection(dir); err != nil {
			el.Add(fmt.Errorf("exit %s: %w", dir, err))
		}
		if exit.Id() == "" {
			el.Add(fmt.Errorf("exit %s: room is required", dir))
		}
	}

	for i, it := range r.Items {
		if err := it.Validate(); err != nil {
			el.Add(fmt.Errorf("item %d: %w", i, err))
		}
	}

	switch r.OnEnter {
	case "", EnterPortal, EnterScatter:
	default:
		el.Add(fmt.Errorf("unknown on_enter hook %q", r.OnEnter))
	}

	return el.Err()
}

// Resolve resolves exit destinations and floor items from the dictionary.
func (r *Room) Resolve(dict *Dictionary) error {
	el := errors.NewErrorList()
	for dir, exit := range r.Exits {
		if err := exit.Resolve(dict.Rooms); err != nil {
			el.Add(fmt.Errorf("exit %s: %w", dir, err))
		}
		r.Exits[dir] = exit
	}
	for i := range r.Items {
		el.Add(r.Items[i].Resolve(dict.Items))
	}
	return el.Err()
}

// EnterHook runs when an entity is about to enter a room. Hooks must not
// relocate the entrant.
type EnterHook func(e Entity, room *RoomInstance)

// RoomInstance is a node of the room graph. Only its floor inventory changes
// after the graph is built.
type RoomInstance struct {
	Id   storage.Identifier
	Room *Room

	Items *Inventory

	exits   map[Direction]*RoomInstance
	onEnter EnterHook
}

// Name returns the room's display name.
func (ri *RoomInstance) Name() string {
	return ri.Room.Name
}

func (ri *RoomInstance) String() string {
	return string(ri.Id)
}

func (ri *RoomInstance) enter(e Entity) {
	if ri.onEnter != nil {
		ri.onEnter(e, ri)
	}
}
