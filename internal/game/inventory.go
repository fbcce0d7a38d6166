package game

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Unlimited is the capacity used for containers that never fill up, such as
// room floors.
const Unlimited = math.MaxFloat64

// Inventory is a weight-capped set of items keyed by item name. It is owned
// by exactly one character, mobile or room.
type Inventory struct {
	capacity float64
	items    map[string]*Item
}

// NewInventory creates an empty inventory holding at most capacity weight.
func NewInventory(capacity float64) *Inventory {
	return &Inventory{
		capacity: capacity,
		items:    make(map[string]*Item),
	}
}

func key(name string) string {
	return strings.ToLower(name)
}

// Capacity returns the maximum total weight.
func (inv *Inventory) Capacity() float64 {
	return inv.capacity
}

// Weight returns the total weight currently held.
func (inv *Inventory) Weight() float64 {
	var total float64
	for _, it := range inv.items {
		total += it.Weight
	}
	return total
}

// Fits reports whether item could be added without exceeding capacity.
func (inv *Inventory) Fits(item *Item) bool {
	return inv.Weight()+item.Weight <= inv.capacity
}

// Add inserts item. It fails with ErrAlreadyHeld if an item of the same
// name is held, or ErrCapacityExceeded if it would not fit.
func (inv *Inventory) Add(item *Item) error {
	if inv.Contains(item.Name) {
		return fmt.Errorf("%w: %s", ErrAlreadyHeld, item.Name)
	}
	if !inv.Fits(item) {
		return fmt.Errorf("%w: %s weighs %gkg, %gkg of %gkg used",
			ErrCapacityExceeded, item.Name, item.Weight, inv.Weight(), inv.capacity)
	}
	inv.items[key(item.Name)] = item
	return nil
}

// AddAll inserts every item or none of them.
func (inv *Inventory) AddAll(items []*Item) error {
	var total float64
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		k := key(it.Name)
		if _, ok := seen[k]; ok || inv.Contains(it.Name) {
			return fmt.Errorf("%w: %s", ErrAlreadyHeld, it.Name)
		}
		seen[k] = struct{}{}
		total += it.Weight
	}
	if inv.Weight()+total > inv.capacity {
		return fmt.Errorf("%w: adding %gkg to %gkg of %gkg", ErrCapacityExceeded, total, inv.Weight(), inv.capacity)
	}
	for _, it := range items {
		inv.items[key(it.Name)] = it
	}
	return nil
}

// Get returns the named item, or nil if not held.
func (inv *Inventory) Get(name string) *Item {
	return inv.items[key(name)]
}

// Contains checks if the named item is held.
func (inv *Inventory) Contains(name string) bool {
	_, ok := inv.items[key(name)]
	return ok
}

// Remove removes the named item and returns it, or nil if not held.
func (inv *Inventory) Remove(name string) *Item {
	k := key(name)
	it, ok := inv.items[k]
	if !ok {
		return nil
	}
	delete(inv.items, k)
	return it
}

// Clear empties the inventory and returns what it held, sorted by name.
func (inv *Inventory) Clear() []*Item {
	items := inv.Items()
	clear(inv.items)
	return items
}

// Items returns the held items sorted by name.
func (inv *Inventory) Items() []*Item {
	items := make([]*Item, 0, len(inv.items))
	for _, it := range inv.items {
		items = append(items, it)
	}
	slices.SortFunc(items, func(a, b *Item) int {
		return strings.Compare(a.Name, b.Name)
	})
	return items
}

// Len returns the number of distinct items held.
func (inv *Inventory) Len() int {
	return len(inv.items)
}
