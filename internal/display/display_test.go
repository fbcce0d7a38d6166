package display

import (
	"strings"
	"testing"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-testutil"
)

func TestTitle(t *testing.T) {
	tests := map[string]struct {
		in  string
		exp string
	}{
		"single word":  {in: "enderman", exp: "Enderman"},
		"underscores":  {in: "eye_of_ender", exp: "Eye Of Ender"},
		"dashes":       {in: "portal-room", exp: "Portal Room"},
		"already done": {in: "Village", exp: "Village"},
		"empty":        {in: "", exp: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "title", Title(tt.in), tt.exp)
		})
	}
}

func TestWrap(t *testing.T) {
	long := strings.Repeat("word ", 40)
	for _, line := range strings.Split(Wrap(long), "\n") {
		if len(line) > DefaultWidth {
			t.Errorf("line longer than %d: %q", DefaultWidth, line)
		}
	}
	testutil.AssertEqual(t, "capitalize", Capitalize("plains"), "Plains")
}

func TestInventory(t *testing.T) {
	inv := game.NewInventory(5)
	testutil.AssertEqual(t, "empty", Inventory(inv), "Inventory (0/5kg): Empty")

	_ = inv.Add(&game.Item{Name: "ender_pearl", Weight: 3, Pickable: true})
	_ = inv.Add(&game.Item{Name: "blaze_powder", Weight: 2, Pickable: true})
	testutil.AssertEqual(t, "full", Inventory(inv), "Inventory (5/5kg): blaze_powder (2kg), ender_pearl (3kg)")
}

func TestDeath(t *testing.T) {
	testutil.AssertEqual(t, "nothing", Death("zombie", nil), "* Zombie has died *\nDropped: Nothing.")
	testutil.AssertEqual(t, "items",
		Death("enderman", []*game.Item{{Name: "ender_pearl", Weight: 3}}),
		"* Enderman has died *\nDropped: ender_pearl (3kg)")
}

func newTestWorld(t *testing.T) *game.World {
	t.Helper()
	pearl := &game.Item{Name: "ender_pearl", Weight: 3, Pickable: true}
	rod := &game.Item{Name: "blaze_rod", Weight: 4, Pickable: true}
	dict := &game.Dictionary{
		Items: storage.NewMemoryStore(map[string]*game.Item{"ender-pearl": pearl, "blaze-rod": rod}),
		Rooms: storage.NewMemoryStore(map[string]*game.Room{
			"plains": {
				Name:        "Plains",
				Description: "a grassy starting area",
				Exits: map[string]storage.SmartIdentifier[*game.Room]{
					"east":  storage.NewSmartIdentifier[*game.Room]("forest"),
					"north": storage.NewSmartIdentifier[*game.Room]("forest"),
				},
				Items: []storage.SmartIdentifier[*game.Item]{storage.NewSmartIdentifier[*game.Item]("blaze-rod")},
			},
			"forest": {
				Name:        "Forest",
				Description: "a dark forest",
			},
		}),
		Mobiles: storage.NewMemoryStore(map[string]*game.Mobile{
			"enderman": {
				Name:      "enderman",
				SpawnRoom: storage.NewSmartIdentifier[*game.Room]("plains"),
			},
		}),
		Recipes: storage.NewMemoryStore(map[string]*game.Recipe{}),
	}
	if err := dict.Resolve(); err != nil {
		t.Fatalf("resolving: %v", err)
	}
	w, err := game.NewWorld(dict, game.Scenario{
		PlayerName: "Steve",
		Capacity:   5,
		StartRoom:  "plains",
		GoalRoom:   "forest",
		GoalItem:   "ender_pearl",
		Seed:       1,
	})
	if err != nil {
		t.Fatalf("building world: %v", err)
	}
	return w
}

func TestRoomDescriber(t *testing.T) {
	w := newTestWorld(t)

	describe, err := NewRoomDescriber("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exp := "You are in a grassy starting area\n" +
		"Exits: north (Forest) east (Forest)\n" +
		"Items: blaze_rod (4kg)\n" +
		"Mobs: Enderman"
	testutil.AssertEqual(t, "plains", describe(w, w.Here()), exp)

	exp = "You are in a dark forest\n" +
		"Exits:\n" +
		"Items: None\n" +
		"Mobs: None"
	testutil.AssertEqual(t, "forest", describe(w, w.Graph().Room("forest")), exp)
}

func TestRoomDescriber_CustomTemplate(t *testing.T) {
	w := newTestWorld(t)

	describe, err := NewRoomDescriber(`{{ .Name | upper }}: {{ len .Exits }} exits`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "custom", describe(w, w.Here()), "PLAINS: 2 exits")

	_, err = NewRoomDescriber(`{{ .Name `)
	testutil.AssertErrorContains(t, err, "parsing room template")
}

func TestMapAndExits(t *testing.T) {
	w := newTestWorld(t)

	testutil.AssertEqual(t, "exits", ExitList(w.Graph(), w.Here()), "Exits: north (Forest) east (Forest)")

	m := Map(w.Graph(), w.Here())
	lines := strings.Split(m, "\n")
	testutil.AssertEqual(t, "line count", len(lines), 2)
	testutil.AssertEqual(t, "forest line", strings.HasPrefix(lines[0], "  Forest"), true)
	testutil.AssertEqual(t, "plains marked", strings.HasPrefix(lines[1], "* Plains"), true)
	testutil.AssertEqual(t, "plains exits", strings.HasSuffix(lines[1], "north->Forest, east->Forest"), true)
}
