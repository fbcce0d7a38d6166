package game

import (
	"fmt"
)

// Pickup moves the named item from e's room to e's inventory.
func (t *Tracker) Pickup(e Entity, name string) (*Item, error) {
	room, err := t.Location(e)
	if err != nil {
		return nil, err
	}

	item := room.Items.Get(name)
	if item == nil {
		return nil, fmt.Errorf("%w: %s is not in %s", ErrItemNotFound, name, room.Name())
	}
	if !item.Pickable {
		return nil, fmt.Errorf("%w: %s", ErrUnpickable, item.Name)
	}

	if err := e.Inventory().Add(item); err != nil {
		return nil, err
	}
	room.Items.Remove(item.Name)
	return item, nil
}

// Drop moves the named item from e's inventory to the floor of e's room.
func (t *Tracker) Drop(e Entity, name string) (*Item, error) {
	room, err := t.Location(e)
	if err != nil {
		return nil, err
	}

	item := e.Inventory().Remove(name)
	if item == nil {
		return nil, fmt.Errorf("%w: %s is not held by %s", ErrItemNotFound, name, e.Name())
	}

	// A floor holding the same name rejects the item; hand it back.
	if err := room.Items.Add(item); err != nil {
		_ = e.Inventory().Add(item)
		return nil, err
	}
	return item, nil
}

// Die drops everything e carries in its room and stops tracking it. It
// returns the dropped items.
func (t *Tracker) Die(e Entity) ([]*Item, error) {
	room, err := t.Location(e)
	if err != nil {
		return nil, err
	}

	items := e.Inventory().Items()
	if err := room.Items.AddAll(items); err != nil {
		return nil, fmt.Errorf("dropping inventory of %s: %w", e.Name(), err)
	}
	e.Inventory().Clear()

	if err := t.Remove(e); err != nil {
		return nil, err
	}
	return items, nil
}
