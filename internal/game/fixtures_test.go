package game

import (
	"math/rand/v2"
	"testing"

	"github.com/pixil98/go-adventure/internal/storage"
)

type recordingPublisher struct {
	msgs []string
}

func (p *recordingPublisher) Publish(_ string, data []byte) error {
	p.msgs = append(p.msgs, string(data))
	return nil
}

func testRoom(name string, exits map[string]string, items ...*Item) *Room {
	r := &Room{
		Name:        name,
		Description: "the " + name,
		Exits:       make(map[string]storage.SmartIdentifier[*Room]),
	}
	for dir, id := range exits {
		r.Exits[dir] = storage.NewSmartIdentifier[*Room](id)
	}
	for _, it := range items {
		r.Items = append(r.Items, storage.NewResolvedSmartIdentifier(it.Name, it))
	}
	return r
}

func newTestGraph(t *testing.T, rooms map[string]*Room) *Graph {
	t.Helper()
	g, err := NewGraph(storage.NewMemoryStore(rooms))
	if err != nil {
		t.Fatalf("building graph: %v", err)
	}
	return g
}

func newTestTracker(t *testing.T, rooms map[string]*Room, opts ...TrackerOpt) *Tracker {
	t.Helper()
	opts = append([]TrackerOpt{WithRand(rand.New(rand.NewPCG(1, 2)))}, opts...)
	return NewTracker(newTestGraph(t, rooms), opts...)
}

// twoRooms has y north of x and x south of y.
func twoRooms() map[string]*Room {
	return map[string]*Room{
		"x": testRoom("X", map[string]string{"north": "y"}),
		"y": testRoom("Y", map[string]string{"south": "x"}),
	}
}

func mustSpawn(t *testing.T, tr *Tracker, e Entity, id string) {
	t.Helper()
	room := tr.Graph().Room(storage.Identifier(id))
	if room == nil {
		t.Fatalf("room %q not in graph", id)
	}
	if err := tr.Spawn(e, room); err != nil {
		t.Fatalf("spawning %s: %v", e.Name(), err)
	}
}

func mustLocation(t *testing.T, tr *Tracker, e Entity) string {
	t.Helper()
	room, err := tr.Location(e)
	if err != nil {
		t.Fatalf("locating %s: %v", e.Name(), err)
	}
	return string(room.Id)
}

var (
	testPowder = &Item{Name: "blaze_powder", Weight: 2, Pickable: true}
	testPearl  = &Item{Name: "ender_pearl", Weight: 3, Pickable: true}
	testRod    = &Item{Name: "blaze_rod", Weight: 4, Pickable: true}
	testSword  = &Item{Name: "iron_sword", Weight: 5, Pickable: true, Damage: 7}
	testEye    = &Item{Name: "eye_of_ender", Weight: 5, Pickable: true}
	testFlesh  = &Item{Name: "rotten_flesh", Weight: 1, Pickable: true}
	testAltar  = &Item{Name: "altar", Weight: 100, Pickable: false}
)
