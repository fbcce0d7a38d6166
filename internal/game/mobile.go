package game

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

// DefaultMobileCapacity is used when a mobile definition leaves capacity unset.
const DefaultMobileCapacity = 50

// Mobile defines a non-player entity loaded from asset files.
type Mobile struct {
	// Name is what players call the mobile (e.g., "enderman")
	Name string `json:"name" yaml:"name"`

	Capacity float64 `json:"capacity,omitempty" yaml:"capacity,omitempty"`

	// Inventory is the mobile's starting inventory
	Inventory []storage.SmartIdentifier[*Item] `json:"inventory,omitempty" yaml:"inventory,omitempty"`

	SpawnRoom storage.SmartIdentifier[*Room] `json:"spawn_room" yaml:"spawn_room"`

	// MoveChance is the per-turn probability of wandering through an exit
	MoveChance float64 `json:"move_chance,omitempty" yaml:"move_chance,omitempty"`

	Behavior BehaviorSpec `json:"behavior,omitempty" yaml:"behavior,omitempty"`
}

// Validate satisfies storage.ValidatingSpec
func (m *Mobile) Validate() error {
	el := errors.NewErrorList()
	if m.Name == "" {
		el.Add(fmt.Errorf("mobile name is required"))
	}
	if m.Capacity < 0 {
		el.Add(fmt.Errorf("mobile capacity must not be negative"))
	}
	if m.MoveChance < 0 || m.MoveChance > 1 {
		el.Add(fmt.Errorf("move_chance must be between 0 and 1"))
	}
	el.Add(m.SpawnRoom.Validate())
	el.Add(m.Behavior.Validate())
	return el.Err()
}

// Resolve resolves foreign keys from the dictionary.
func (m *Mobile) Resolve(dict *Dictionary) error {
	el := errors.NewErrorList()
	for i := range m.Inventory {
		el.Add(m.Inventory[i].Resolve(dict.Items))
	}
	el.Add(m.SpawnRoom.Resolve(dict.Rooms))
	return el.Err()
}

// Spawn creates a new instance of the mobile carrying its starting items.
func (m *Mobile) Spawn() (*MobileInstance, error) {
	capacity := m.Capacity
	if capacity == 0 {
		capacity = DefaultMobileCapacity
	}

	b, err := m.Behavior.Build()
	if err != nil {
		return nil, fmt.Errorf("mobile %s: %w", m.Name, err)
	}

	mi := NewMobileInstance(m.Name, capacity, b, m.MoveChance)
	mi.Mobile = m

	items := make([]*Item, 0, len(m.Inventory))
	for _, ref := range m.Inventory {
		items = append(items, ref.Get())
	}
	if err := mi.Inventory().AddAll(items); err != nil {
		return nil, fmt.Errorf("mobile %s: starting inventory: %w", m.Name, err)
	}

	return mi, nil
}

// MobileInstance is a spawned mobile. Its location is recorded by the Tracker.
type MobileInstance struct {
	Actor

	// Mobile is the definition the instance was spawned from, if any
	Mobile *Mobile

	behavior   Behavior
	moveChance float64
}

// NewMobileInstance creates a mobile with an optional behavior.
func NewMobileInstance(name string, capacity float64, b Behavior, moveChance float64) *MobileInstance {
	return &MobileInstance{
		Actor:      NewActor(name, capacity),
		behavior:   b,
		moveChance: moveChance,
	}
}

// MatchName returns true if name refers to this mobile (case-insensitive).
func (m *MobileInstance) MatchName(name string) bool {
	return strings.EqualFold(m.Name(), name)
}

// MoveChance returns the per-turn probability of wandering.
func (m *MobileInstance) MoveChance() float64 {
	return m.moveChance
}

// PerformAction runs the mobile's behavior. Mobiles without one do nothing.
// Callers outside the Tracker should use Tracker.Act so the re-entrancy guard
// applies.
func (m *MobileInstance) PerformAction(t *Tracker) error {
	if m.behavior == nil {
		return nil
	}
	return m.behavior.Perform(t, m)
}

// AutoMove wanders through a random exit with probability MoveChance.
// It returns the new room, or nil when the mobile stayed put.
func (m *MobileInstance) AutoMove(t *Tracker) (*RoomInstance, error) {
	if t.Rand().Float64() >= m.moveChance {
		return nil, nil
	}

	cur, err := t.Location(m)
	if err != nil {
		return nil, err
	}

	exits := t.Graph().Exits(cur)
	if len(exits) == 0 {
		return nil, nil
	}

	dest, err := t.Move(m, exits[t.Rand().IntN(len(exits))])
	if err != nil {
		return nil, err
	}
	t.Narrate(fmt.Sprintf("* %s has moved to %s *", m.Name(), dest.Name()))
	return dest, nil
}
