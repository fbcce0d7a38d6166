package game

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
)

// location is the room history of one tracked entity. The last element is
// the current room.
type location struct {
	entity  Entity
	history []*RoomInstance
}

func (l *location) current() *RoomInstance {
	if len(l.history) == 0 {
		panic(fmt.Sprintf("tracker: %s has an empty room history", l.entity.Name()))
	}
	return l.history[len(l.history)-1]
}

// Tracker is the single authority over where entities are. Entities carry no
// room of their own; every relocation goes through a Tracker.
//
// A Tracker is not safe for concurrent use. Each game owns its own.
type Tracker struct {
	graph     *Graph
	locations map[string]*location
	order     []string

	// running holds mobiles whose action is executing right now. acted holds
	// mobiles that already acted during the current cascade, which starts
	// when a top-level operation is entered and ends when it returns.
	running map[string]struct{}
	acted   map[string]struct{}
	depth   int

	// moving holds entities between departure and arrival.
	moving map[string]struct{}

	rng       *rand.Rand
	publisher Publisher
	subject   string
}

type TrackerOpt func(*Tracker)

// WithRand sets the random source used by behaviors and auto-movement.
func WithRand(r *rand.Rand) TrackerOpt {
	return func(t *Tracker) {
		t.rng = r
	}
}

// WithPublisher sends narration to subject on p.
func WithPublisher(p Publisher, subject string) TrackerOpt {
	return func(t *Tracker) {
		t.publisher = p
		t.subject = subject
	}
}

func NewTracker(g *Graph, opts ...TrackerOpt) *Tracker {
	t := &Tracker{
		graph:     g,
		locations: make(map[string]*location),
		running:   make(map[string]struct{}),
		acted:     make(map[string]struct{}),
		moving:    make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.rng == nil {
		t.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return t
}

func (t *Tracker) Graph() *Graph {
	return t.graph
}

func (t *Tracker) Rand() *rand.Rand {
	return t.rng
}

// Narrate publishes a line of game output. Delivery failures are logged, not
// returned, since nothing in the simulation can act on them.
func (t *Tracker) Narrate(msg string) {
	if t.publisher == nil {
		return
	}
	if err := t.publisher.Publish(t.subject, []byte(msg)); err != nil {
		slog.Warn("publishing narration", "subject", t.subject, "error", err)
	}
}

// Spawn places e in room with a fresh history. Spawning an entity that is
// already tracked replaces its history.
func (t *Tracker) Spawn(e Entity, room *RoomInstance) error {
	if room == nil {
		return fmt.Errorf("spawning %s: room %w", e.Name(), ErrNotFound)
	}
	name := e.Name()
	if _, ok := t.locations[name]; !ok {
		t.order = append(t.order, name)
	}
	t.locations[name] = &location{
		entity:  e,
		history: []*RoomInstance{room},
	}
	return nil
}

// Remove stops tracking e. Removing an untracked entity is an error.
func (t *Tracker) Remove(e Entity) error {
	name := e.Name()
	if _, ok := t.locations[name]; !ok {
		return fmt.Errorf("%w: %s", ErrEntityNotFound, name)
	}
	delete(t.locations, name)
	t.order = slices.DeleteFunc(t.order, func(n string) bool { return n == name })
	return nil
}

func (t *Tracker) lookup(e Entity) (*location, error) {
	loc, ok := t.locations[e.Name()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntityNotFound, e.Name())
	}
	return loc, nil
}

// Tracked reports whether e currently has a location.
func (t *Tracker) Tracked(e Entity) bool {
	_, ok := t.locations[e.Name()]
	return ok
}

// Location returns the room e is in.
func (t *Tracker) Location(e Entity) (*RoomInstance, error) {
	loc, err := t.lookup(e)
	if err != nil {
		return nil, err
	}
	return loc.current(), nil
}

// History returns a copy of the rooms e has visited, oldest first.
func (t *Tracker) History(e Entity) ([]*RoomInstance, error) {
	loc, err := t.lookup(e)
	if err != nil {
		return nil, err
	}
	return slices.Clone(loc.history), nil
}

// EntitiesIn returns the entities whose current room is room, in spawn order.
func (t *Tracker) EntitiesIn(room *RoomInstance) []Entity {
	var found []Entity
	for _, name := range t.order {
		loc := t.locations[name]
		if loc.current() == room {
			found = append(found, loc.entity)
		}
	}
	return found
}

// MobsIn returns the mobiles in room, in spawn order.
func (t *Tracker) MobsIn(room *RoomInstance) []*MobileInstance {
	var found []*MobileInstance
	for _, e := range t.EntitiesIn(room) {
		if m, ok := e.(*MobileInstance); ok {
			found = append(found, m)
		}
	}
	return found
}

// Mobs returns every tracked mobile in spawn order.
func (t *Tracker) Mobs() []*MobileInstance {
	var found []*MobileInstance
	for _, name := range t.order {
		if m, ok := t.locations[name].entity.(*MobileInstance); ok {
			found = append(found, m)
		}
	}
	return found
}

// Move walks e through the exit in direction dir. A missing exit returns
// ErrNoExit and leaves e where it was.
func (t *Tracker) Move(e Entity, dir Direction) (*RoomInstance, error) {
	loc, err := t.lookup(e)
	if err != nil {
		return nil, err
	}

	next := t.graph.Exit(loc.current(), dir)
	if next == nil {
		return nil, fmt.Errorf("%w: %s from %s", ErrNoExit, dir, loc.current().Name())
	}

	return t.relocate(e, next)
}

// Teleport moves e straight to room, ignoring exits. Mobiles in the room
// being left and the destination's hook fire as for Move.
func (t *Tracker) Teleport(e Entity, room *RoomInstance) (*RoomInstance, error) {
	if room == nil {
		return nil, fmt.Errorf("teleporting %s: room %w", e.Name(), ErrNotFound)
	}
	if _, err := t.lookup(e); err != nil {
		return nil, err
	}
	return t.relocate(e, room)
}

// relocate runs a move in three steps: the other mobiles in the room being
// left act, the destination hook runs, then the destination is appended to
// the history.
func (t *Tracker) relocate(e Entity, dest *RoomInstance) (*RoomInstance, error) {
	name := e.Name()
	if _, ok := t.moving[name]; ok {
		return nil, fmt.Errorf("%w: %s is already moving", ErrInvalidState, name)
	}
	t.moving[name] = struct{}{}
	defer delete(t.moving, name)

	defer t.cascade()()

	from := t.locations[name].current()
	for _, m := range t.MobsIn(from) {
		if m.Name() == name {
			continue
		}
		t.trigger(m, from)
	}

	dest.enter(e)

	// A mobile reacting to the departure may have killed the mover.
	loc, ok := t.locations[name]
	if !ok || loc.entity != e {
		return nil, fmt.Errorf("%w: %s left the world while moving", ErrEntityNotFound, name)
	}
	loc.history = append(loc.history, dest)
	return dest, nil
}

// GoBack returns e to the room it was in before its last move. The spawn
// room is never popped.
func (t *Tracker) GoBack(e Entity) (*RoomInstance, error) {
	loc, err := t.lookup(e)
	if err != nil {
		return nil, err
	}
	if _, ok := t.moving[e.Name()]; ok {
		return nil, fmt.Errorf("%w: %s is already moving", ErrInvalidState, e.Name())
	}
	if len(loc.history) <= 1 {
		return nil, ErrNoHistory
	}
	loc.history = loc.history[:len(loc.history)-1]
	return loc.current(), nil
}

// Act runs m's action as a top-level operation.
func (t *Tracker) Act(m *MobileInstance) error {
	if _, err := t.lookup(m); err != nil {
		return err
	}
	defer t.cascade()()
	return t.run(m)
}

// cascade opens a scope in which each mobile acts at most once. The returned
// func closes it.
func (t *Tracker) cascade() func() {
	if t.depth == 0 {
		clear(t.acted)
	}
	t.depth++
	return func() {
		t.depth--
	}
}

// trigger runs m's action in reaction to an entity leaving from. Mobiles
// that have since left from, or the world, are skipped.
func (t *Tracker) trigger(m *MobileInstance, from *RoomInstance) {
	loc, ok := t.locations[m.Name()]
	if !ok || loc.entity != Entity(m) || loc.current() != from {
		return
	}
	if err := t.run(m); err != nil {
		slog.Warn("mobile action failed", "mobile", m.Name(), "error", err)
	}
}

func (t *Tracker) run(m *MobileInstance) error {
	name := m.Name()
	if _, ok := t.running[name]; ok {
		return nil
	}
	if _, ok := t.acted[name]; ok {
		return nil
	}
	t.running[name] = struct{}{}
	t.acted[name] = struct{}{}
	defer delete(t.running, name)

	return m.PerformAction(t)
}
