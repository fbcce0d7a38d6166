package game

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

// Graph is the fixed set of rooms and the directed exits between them.
type Graph struct {
	rooms map[storage.Identifier]*RoomInstance
	ids   []storage.Identifier
}

// NewGraph builds room instances and wires their exits. Rooms must already
// be resolved.
func NewGraph(rooms storage.Storer[*Room]) (*Graph, error) {
	g := &Graph{
		rooms: make(map[storage.Identifier]*RoomInstance),
	}

	for id, room := range rooms.GetAll() {
		g.rooms[id] = &RoomInstance{
			Id:    id,
			Room:  room,
			Items: NewInventory(Unlimited),
			exits: make(map[Direction]*RoomInstance),
		}
		g.ids = append(g.ids, id)
	}
	slices.SortFunc(g.ids, func(a, b storage.Identifier) int {
		return strings.Compare(string(a), string(b))
	})

	el := errors.NewErrorList()
	for _, id := range g.ids {
		ri := g.rooms[id]
		for label, exit := range ri.Room.Exits {
			dir, err := ParseDirection(label)
			if err != nil {
				el.Add(fmt.Errorf("room %s: %w", id, err))
				continue
			}
			dest, ok := g.rooms[storage.Identifier(exit.Id())]
			if !ok {
				el.Add(fmt.Errorf("room %s: exit %s leads to unknown room %q", id, dir, exit.Id()))
				continue
			}
			ri.exits[dir] = dest
		}
	}
	if err := el.Err(); err != nil {
		return nil, err
	}

	return g, nil
}

// Room returns the room with the given id, or nil.
func (g *Graph) Room(id storage.Identifier) *RoomInstance {
	return g.rooms[id]
}

// Rooms returns every room sorted by id.
func (g *Graph) Rooms() []*RoomInstance {
	rooms := make([]*RoomInstance, 0, len(g.ids))
	for _, id := range g.ids {
		rooms = append(rooms, g.rooms[id])
	}
	return rooms
}

// Exit returns the neighbour of room in direction dir, or nil.
func (g *Graph) Exit(room *RoomInstance, dir Direction) *RoomInstance {
	if room == nil {
		return nil
	}
	return room.exits[dir]
}

// Exits returns the directions leading out of room in display order.
func (g *Graph) Exits(room *RoomInstance) []Direction {
	var dirs []Direction
	if room == nil {
		return dirs
	}
	for _, d := range Directions {
		if _, ok := room.exits[d]; ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// OnEnter installs the hook for a room. It is meant to be called while a
// game is being set up.
func (g *Graph) OnEnter(id storage.Identifier, hook EnterHook) error {
	ri, ok := g.rooms[id]
	if !ok {
		return fmt.Errorf("room %q: %w", id, ErrNotFound)
	}
	ri.onEnter = hook
	return nil
}
