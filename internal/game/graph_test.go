package game

import (
	"testing"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-testutil"
)

func TestNewGraph(t *testing.T) {
	tests := map[string]struct {
		rooms  map[string]*Room
		expErr string
	}{
		"valid": {
			rooms: twoRooms(),
		},
		"unknown destination": {
			rooms: map[string]*Room{
				"a": testRoom("A", map[string]string{"north": "nowhere"}),
			},
			expErr: `exit north leads to unknown room "nowhere"`,
		},
		"bad direction": {
			rooms: map[string]*Room{
				"a": testRoom("A", map[string]string{"up": "a"}),
			},
			expErr: `unknown direction "up"`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewGraph(storage.NewMemoryStore(tt.rooms))
			if tt.expErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestGraph_Exits(t *testing.T) {
	g := newTestGraph(t, map[string]*Room{
		"plains":  testRoom("Plains", map[string]string{"west": "nether", "north": "village", "South": "nether"}),
		"village": testRoom("Village", map[string]string{"south": "plains"}),
		"nether":  testRoom("Nether", nil),
	})
	plains := g.Room("plains")

	var labels string
	for _, d := range g.Exits(plains) {
		labels += d.String() + " "
	}
	testutil.AssertEqual(t, "exits", labels, "north south west ")

	if g.Exit(plains, North) != g.Room("village") {
		t.Error("expected north to lead to the village")
	}
	if g.Exit(plains, East) != nil {
		t.Error("expected no east exit")
	}
	if g.Exit(g.Room("nether"), East) != nil {
		t.Error("one-way edge must not be mirrored")
	}
	testutil.AssertEqual(t, "nether exits", len(g.Exits(g.Room("nether"))), 0)
	testutil.AssertEqual(t, "room count", len(g.Rooms()), 3)
	testutil.AssertEqual(t, "first room", string(g.Rooms()[0].Id), "nether")
}

func TestGraph_OnEnterUnknownRoom(t *testing.T) {
	g := newTestGraph(t, twoRooms())
	err := g.OnEnter("missing", func(Entity, *RoomInstance) {})
	testutil.AssertErrorContains(t, err, "not found")
}
