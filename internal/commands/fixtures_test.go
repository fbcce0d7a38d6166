package commands

import (
	"strings"
	"testing"

	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
)

const testSubject = "adventure.session.test"

type published struct {
	subject string
	msg     string
}

type recordingPublisher struct {
	msgs []published
}

func (p *recordingPublisher) Publish(subject string, data []byte) error {
	p.msgs = append(p.msgs, published{subject: subject, msg: string(data)})
	return nil
}

func (p *recordingPublisher) last() string {
	if len(p.msgs) == 0 {
		return ""
	}
	return p.msgs[len(p.msgs)-1].msg
}

func ref[T storage.ValidatingSpec](id string) storage.SmartIdentifier[T] {
	return storage.NewSmartIdentifier[T](id)
}

func testRoom(name, desc string, exits map[string]string, onEnter string, items ...string) *game.Room {
	r := &game.Room{
		Name:        name,
		Description: desc,
		Exits:       make(map[string]storage.SmartIdentifier[*game.Room]),
		OnEnter:     onEnter,
	}
	for dir, id := range exits {
		r.Exits[dir] = ref[*game.Room](id)
	}
	for _, id := range items {
		r.Items = append(r.Items, ref[*game.Item](id))
	}
	return r
}

func newTestWorld(t *testing.T, pub *recordingPublisher) *game.World {
	t.Helper()

	dict := &game.Dictionary{
		Items: storage.NewMemoryStore(map[string]*game.Item{
			"blaze-powder": {Name: "blaze_powder", Weight: 2, Pickable: true},
			"ender-pearl":  {Name: "ender_pearl", Weight: 3, Pickable: true},
			"blaze-rod":    {Name: "blaze_rod", Weight: 4, Pickable: true},
			"iron-sword":   {Name: "iron_sword", Weight: 5, Pickable: true, Damage: 7},
			"eye-of-ender": {Name: "eye_of_ender", Weight: 5, Pickable: true},
			"anvil":        {Name: "anvil", Weight: 100},
		}),
		Rooms: storage.NewMemoryStore(map[string]*game.Room{
			"plains": testRoom("Plains", "a grassy starting area", map[string]string{
				"north": "village", "east": "forest", "south": "stronghold",
			}, "", "blaze-rod", "anvil"),
			"village":     testRoom("Village", "a quiet village", map[string]string{"south": "plains"}, "", "blaze-powder"),
			"forest":      testRoom("Forest", "a dark forest", map[string]string{"west": "plains"}, "", "blaze-rod"),
			"stronghold":  testRoom("Stronghold", "a stone fortress", map[string]string{"north": "plains", "south": "portal-room"}, "", "iron-sword"),
			"portal-room": testRoom("Portal Room", "the end portal", map[string]string{"north": "stronghold"}, game.EnterPortal),
		}),
		Mobiles: storage.NewMemoryStore(map[string]*game.Mobile{
			"enderman": {
				Name:      "enderman",
				Inventory: []storage.SmartIdentifier[*game.Item]{ref[*game.Item]("ender-pearl")},
				SpawnRoom: ref[*game.Room]("forest"),
			},
		}),
		Recipes: storage.NewMemoryStore(map[string]*game.Recipe{
			"eye-of-ender": {
				Ingredients: []storage.SmartIdentifier[*game.Item]{ref[*game.Item]("blaze-powder"), ref[*game.Item]("ender-pearl")},
				Result:      ref[*game.Item]("eye-of-ender"),
			},
		}),
	}
	if err := dict.Resolve(); err != nil {
		t.Fatalf("resolving dictionary: %v", err)
	}

	describe, err := display.NewRoomDescriber("")
	if err != nil {
		t.Fatalf("building describer: %v", err)
	}

	w, err := game.NewWorld(dict, game.Scenario{
		PlayerName: "Steve",
		Capacity:   10,
		StartRoom:  "plains",
		GoalRoom:   "portal-room",
		GoalItem:   "eye_of_ender",
		Seed:       7,
	}, game.WithNarration(pub, testSubject), game.WithDescriber(describe))
	if err != nil {
		t.Fatalf("building world: %v", err)
	}
	return w
}

func newTestCommands() *storage.MemoryStore[*Command] {
	str := func(name, missing string) InputSpec {
		return InputSpec{Name: name, Type: InputTypeString, Required: true, Missing: missing}
	}

	return storage.NewMemoryStore(map[string]*Command{
		"go": {
			Handler:  "move",
			Category: "movement",
			Inputs:   []InputSpec{str("direction", "Go where?")},
		},
		"north": {
			Handler:  "move",
			Aliases:  []string{"n"},
			Category: "movement",
			Config:   map[string]any{"direction": "north"},
		},
		"south": {
			Handler:  "move",
			Aliases:  []string{"s"},
			Category: "movement",
			Config:   map[string]any{"direction": "south"},
		},
		"back": {Handler: "back", Category: "movement"},
		"pickup": {
			Handler:  "pickup",
			Aliases:  []string{"get"},
			Category: "items",
			Inputs:   []InputSpec{str("item", "Pick what?")},
		},
		"drop": {
			Handler:  "drop",
			Category: "items",
			Inputs:   []InputSpec{str("item", "Drop what?")},
		},
		"craft": {
			Handler:  "craft",
			Category: "items",
			Inputs:   []InputSpec{str("first", "Craft what with what?"), str("second", "Craft what with what?")},
		},
		"attack": {
			Handler:  "attack",
			Priority: 1,
			Category: "combat",
			Inputs:   []InputSpec{str("mob", "Attack what?")},
		},
		"inventory": {Handler: "inventory", Aliases: []string{"i"}, Category: "items"},
		"look": {
			Handler: "look",
			Inputs:  []InputSpec{{Name: "target", Type: InputTypeString}},
		},
		"map":  {Handler: "map"},
		"help": {Handler: "help", Inputs: []InputSpec{{Name: "command", Type: InputTypeString}}},
		"quit": {Handler: "quit", Usage: "Quit what?"},
		"say": {
			Handler: "message",
			Inputs:  []InputSpec{{Name: "text", Type: InputTypeString, Required: true, Rest: true, Missing: "Say what?"}},
			Config:  map[string]any{"message": "{{ .Actor.Name }} says: {{ .Inputs.text }}"},
		},
	})
}

func newTestHandler(t *testing.T, pub Publisher) *Handler {
	t.Helper()
	h, err := NewDefaultHandler(newTestCommands(), pub)
	if err != nil {
		t.Fatalf("building handler: %v", err)
	}
	return h
}

// run executes one typed line the way a session does.
func run(t *testing.T, h *Handler, w *game.World, line string) error {
	t.Helper()
	words := strings.Fields(line)
	return h.Exec(t.Context(), w, testSubject, words[0], words[1:]...)
}
