package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

// Scenario describes how a game starts and how it is won.
type Scenario struct {
	Title      string  `json:"title" yaml:"title"`
	Intro      string  `json:"intro,omitempty" yaml:"intro,omitempty"`
	PlayerName string  `json:"player_name" yaml:"player_name"`
	Capacity   float64 `json:"capacity" yaml:"capacity"`
	StartRoom  string  `json:"start_room" yaml:"start_room"`
	GoalRoom   string  `json:"goal_room" yaml:"goal_room"`
	GoalItem   string  `json:"goal_item" yaml:"goal_item"`

	// Seed makes a game reproducible. Zero picks a random seed.
	Seed uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// Selector is the label shown when choosing between scenarios.
func (s *Scenario) Selector() string {
	if s.Title == "" {
		return s.GoalItem
	}
	return s.Title
}

func (s *Scenario) Validate() error {
	el := errors.NewErrorList()
	if s.PlayerName == "" {
		el.Add(fmt.Errorf("player_name is required"))
	}
	if s.Capacity <= 0 {
		el.Add(fmt.Errorf("capacity must be positive"))
	}
	if s.StartRoom == "" {
		el.Add(fmt.Errorf("start_room is required"))
	}
	if s.GoalRoom == "" {
		el.Add(fmt.Errorf("goal_room is required"))
	}
	if s.GoalItem == "" {
		el.Add(fmt.Errorf("goal_item is required"))
	}
	return el.Err()
}

// Describer renders a room for the player.
type Describer func(w *World, room *RoomInstance) string

// World is one running game: its room graph, tracker, player and mobiles.
// It is the orchestrator around the tracker and is not safe for concurrent
// use.
type World struct {
	dict     *Dictionary
	scenario Scenario
	graph    *Graph
	tracker  *Tracker
	recipes  *RecipeBook
	player   *Character

	describe    Describer
	trackerOpts []TrackerOpt

	// pending holds work requested by enter hooks, run once the move that
	// fired the hook has committed.
	pending []func()

	over bool
	won  bool
}

type WorldOpt func(*World)

// WithNarration publishes the game's output to subject on p.
func WithNarration(p Publisher, subject string) WorldOpt {
	return func(w *World) {
		w.trackerOpts = append(w.trackerOpts, WithPublisher(p, subject))
	}
}

// WithDescriber sets how rooms are rendered after the player arrives.
func WithDescriber(d Describer) WorldOpt {
	return func(w *World) {
		w.describe = d
	}
}

// WithTrackerOpts passes options through to the world's tracker.
func WithTrackerOpts(opts ...TrackerOpt) WorldOpt {
	return func(w *World) {
		w.trackerOpts = append(w.trackerOpts, opts...)
	}
}

// NewWorld builds a fresh game from a resolved dictionary: rooms are seeded
// with their items, mobiles are spawned and the player is placed in the
// start room.
func NewWorld(dict *Dictionary, sc Scenario, opts ...WorldOpt) (*World, error) {
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("validating scenario: %w", err)
	}

	g, err := NewGraph(dict.Rooms)
	if err != nil {
		return nil, fmt.Errorf("building room graph: %w", err)
	}

	w := &World{
		dict:     dict,
		scenario: sc,
		graph:    g,
		recipes:  dict.RecipeBook(),
		describe: func(_ *World, room *RoomInstance) string { return room.Name() },
	}
	if sc.Seed != 0 {
		w.trackerOpts = append(w.trackerOpts, WithRand(rand.New(rand.NewPCG(sc.Seed, sc.Seed))))
	}
	for _, opt := range opts {
		opt(w)
	}
	w.tracker = NewTracker(g, w.trackerOpts...)

	if g.Room(storage.Identifier(sc.StartRoom)) == nil {
		return nil, fmt.Errorf("start room %q: %w", sc.StartRoom, ErrNotFound)
	}
	if g.Room(storage.Identifier(sc.GoalRoom)) == nil {
		return nil, fmt.Errorf("goal room %q: %w", sc.GoalRoom, ErrNotFound)
	}
	if dict.FindItem(sc.GoalItem) == nil {
		return nil, fmt.Errorf("goal item %q: %w", sc.GoalItem, ErrNotFound)
	}

	el := errors.NewErrorList()
	for _, ri := range g.Rooms() {
		items := make([]*Item, 0, len(ri.Room.Items))
		for _, ref := range ri.Room.Items {
			items = append(items, ref.Get())
		}
		el.Add(ri.Items.AddAll(items))
		el.Add(w.installHook(ri))
	}
	if err := el.Err(); err != nil {
		return nil, err
	}

	for _, id := range sortedIds(dict.Mobiles) {
		def := dict.Mobiles.Get(string(id))
		mi, err := def.Spawn()
		if err != nil {
			return nil, err
		}
		if err := w.tracker.Spawn(mi, g.Room(storage.Identifier(def.SpawnRoom.Id()))); err != nil {
			return nil, err
		}
	}

	w.player = NewCharacter(sc.PlayerName, sc.Capacity)
	if w.tracker.Tracked(w.player) {
		return nil, fmt.Errorf("player name %q is taken by a mobile", sc.PlayerName)
	}
	if err := w.tracker.Spawn(w.player, g.Room(storage.Identifier(sc.StartRoom))); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *World) installHook(ri *RoomInstance) error {
	switch ri.Room.OnEnter {
	case EnterPortal:
		return w.graph.OnEnter(ri.Id, w.enterPortal)
	case EnterScatter:
		return w.graph.OnEnter(ri.Id, w.enterScatter)
	default:
		return nil
	}
}

func (w *World) enterPortal(e Entity, room *RoomInstance) {
	if e != Entity(w.player) {
		return
	}
	w.Narrate(fmt.Sprintf("The portal in %s hums as you approach.", room.Name()))
}

// enterScatter throws the player to a random other room once the move into
// room has committed.
func (w *World) enterScatter(e Entity, room *RoomInstance) {
	if e != Entity(w.player) {
		return
	}
	w.pending = append(w.pending, func() {
		var candidates []*RoomInstance
		for _, r := range w.graph.Rooms() {
			if r != room {
				candidates = append(candidates, r)
			}
		}
		if len(candidates) == 0 {
			w.Narrate("No other rooms to teleport to!")
			return
		}

		dest, err := w.tracker.Teleport(w.player, candidates[w.tracker.Rand().IntN(len(candidates))])
		if err != nil {
			slog.Warn("scattering player", "room", room.Id, "error", err)
			return
		}
		w.Narrate(fmt.Sprintf("* Teleporting to %s *", dest.Name()))
		w.Narrate(w.describe(w, dest))
	})
}

// Tracker exposes the world's location tracker.
func (w *World) Tracker() *Tracker {
	return w.tracker
}

func (w *World) Graph() *Graph {
	return w.graph
}

func (w *World) Player() *Character {
	return w.player
}

func (w *World) Scenario() Scenario {
	return w.scenario
}

// Narrate publishes a line of output to the player.
func (w *World) Narrate(msg string) {
	w.tracker.Narrate(msg)
}

// Here returns the player's current room.
func (w *World) Here() *RoomInstance {
	room, err := w.tracker.Location(w.player)
	if err != nil {
		// The player is only removed when the game ends.
		panic(fmt.Sprintf("player %s is not tracked: %v", w.player.Name(), err))
	}
	return room
}

// Describe renders room the way it is shown on arrival.
func (w *World) Describe(room *RoomInstance) string {
	return w.describe(w, room)
}

// Go moves the player through an exit, describes the destination, runs any
// work queued by the destination's hook and checks for a win.
func (w *World) Go(dir Direction) (*RoomInstance, error) {
	room, err := w.tracker.Move(w.player, dir)
	if err != nil {
		return nil, err
	}
	w.Narrate(w.describe(w, room))
	w.settle()
	return w.Here(), nil
}

// Back returns the player to the previous room.
func (w *World) Back() (*RoomInstance, error) {
	room, err := w.tracker.GoBack(w.player)
	if err != nil {
		return nil, err
	}
	w.Narrate(w.describe(w, room))
	return room, nil
}

// settle drains hook work, which may itself queue more, then checks for a
// win. The queue is bounded by the number of rooms so a ring of scatter
// rooms cannot spin forever.
func (w *World) settle() {
	for i := 0; len(w.pending) > 0 && i <= len(w.graph.Rooms()); i++ {
		fn := w.pending[0]
		w.pending = w.pending[1:]
		fn()
	}
	w.pending = nil
	w.CheckWin()
}

// CheckWin ends the game if the player stands in the goal room holding the
// goal item.
func (w *World) CheckWin() bool {
	if w.Here().Id != storage.Identifier(w.scenario.GoalRoom) {
		return false
	}
	if !w.player.Inventory().Contains(w.scenario.GoalItem) {
		w.Narrate(fmt.Sprintf("You don't have the %s. Craft it and head to %s to win.",
			w.scenario.GoalItem, w.Here().Name()))
		return false
	}
	w.Narrate("You've activated the End Portal! You win!")
	w.won = true
	w.over = true
	return true
}

// Pickup moves an item from the player's room to the player.
func (w *World) Pickup(name string) (*Item, error) {
	return w.tracker.Pickup(w.player, name)
}

// Drop moves an item from the player to the player's room.
func (w *World) Drop(name string) (*Item, error) {
	return w.tracker.Drop(w.player, name)
}

// Craft combines two held items into the result of their recipe.
func (w *World) Craft(a, b string) (*Item, error) {
	inv := w.player.Inventory()
	x, y := inv.Get(a), inv.Get(b)
	if x == nil || y == nil {
		return nil, fmt.Errorf("%w: you don't have those items", ErrItemNotFound)
	}

	recipe, err := w.recipes.Find(x, y)
	if err != nil {
		return nil, err
	}
	result := recipe.Result.Get()
	if inv.Contains(result.Name) && !result.MatchName(x.Name) && !result.MatchName(y.Name) {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyHeld, result.Name)
	}

	inv.Remove(x.Name)
	inv.Remove(y.Name)
	if err := inv.Add(result); err != nil {
		// Both ingredients were just held, so they fit again.
		_ = inv.AddAll([]*Item{x, y})
		return nil, err
	}
	return result, nil
}

// Attack kills the named mobile if it shares the player's room and the
// player is armed. It returns the items the mobile dropped.
func (w *World) Attack(name string) (*MobileInstance, []*Item, error) {
	var target *MobileInstance
	for _, m := range w.tracker.MobsIn(w.Here()) {
		if m.MatchName(name) {
			target = m
			break
		}
	}
	if target == nil {
		return nil, nil, fmt.Errorf("%w: there is no %s here", ErrEntityNotFound, strings.ToLower(name))
	}
	if !w.player.HasWeapon() {
		return nil, nil, ErrNoWeapon
	}

	dropped, err := w.tracker.Die(target)
	if err != nil {
		return nil, nil, err
	}
	return target, dropped, nil
}

// Tick runs the mobile phase of a turn: every live mobile, in spawn order,
// acts and then wanders. Mobiles killed earlier in the phase are skipped.
func (w *World) Tick(ctx context.Context) {
	for _, m := range w.tracker.Mobs() {
		if !w.tracker.Tracked(m) {
			continue
		}
		if err := w.tracker.Act(m); err != nil {
			slog.WarnContext(ctx, "mobile action failed", "mobile", m.Name(), "error", err)
		}
		if !w.tracker.Tracked(m) {
			continue
		}
		if _, err := m.AutoMove(w.tracker); err != nil {
			slog.WarnContext(ctx, "mobile movement failed", "mobile", m.Name(), "error", err)
		}
	}
}

// Quit ends the game without a win.
func (w *World) Quit() {
	w.over = true
}

func (w *World) Over() bool {
	return w.over
}

func (w *World) Won() bool {
	return w.won
}
