package commands

import (
	"errors"
	"strings"
	"testing"

	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-testutil"
)

func TestHandler_Exec(t *testing.T) {
	tests := map[string]struct {
		setup   []string
		line    string
		expMsg  string
		expErr  string
		expRoom string
	}{
		"unknown command": {
			line:   "xyzzy",
			expErr: "I don't know what you mean...",
		},
		"go without direction": {
			line:   "go",
			expErr: "Go where?",
		},
		"go bad direction": {
			line:    "go up",
			expErr:  "I don't know that direction.\nExits: north (Village) east (Forest) south (Stronghold)",
			expRoom: "plains",
		},
		"go through missing exit": {
			line:    "go west",
			expErr:  "I don't know that direction.",
			expRoom: "plains",
		},
		"go east": {
			line:    "go east",
			expMsg:  "You are in a dark forest",
			expRoom: "forest",
		},
		"alias moves": {
			line:    "n",
			expMsg:  "You are in a quiet village",
			expRoom: "village",
		},
		"back at start": {
			line:   "back",
			expErr: "Can't go back.",
		},
		"back after move": {
			setup:   []string{"s"},
			line:    "back",
			expMsg:  "You are in a grassy starting area",
			expRoom: "plains",
		},
		"pickup": {
			line:   "pickup blaze_rod",
			expMsg: "blaze_rod picked up.",
		},
		"pickup by alias": {
			line:   "get BLAZE_ROD",
			expMsg: "blaze_rod picked up.",
		},
		"pickup missing item": {
			line:   "pickup diamond",
			expErr: "diamond is not in the room.",
		},
		"pickup a second copy": {
			setup:  []string{"pickup blaze_rod", "go east"},
			line:   "pickup blaze_rod",
			expErr: "You already have blaze_rod.",
		},
		"drop onto the same item": {
			setup:  []string{"go east", "pickup blaze_rod", "go west"},
			line:   "drop blaze_rod",
			expErr: "There is already blaze_rod here.",
		},
		"pickup unpickable": {
			line:   "pickup anvil",
			expErr: "anvil is not pickable.",
		},
		"pickup without item": {
			line:   "pickup",
			expErr: "Pick what?",
		},
		"pickup over capacity": {
			setup:  []string{"pickup blaze_rod", "s", "pickup iron_sword", "n", "n"},
			line:   "pickup blaze_powder",
			expErr: "Inventory full.",
		},
		"drop": {
			setup:  []string{"pickup blaze_rod"},
			line:   "drop blaze_rod",
			expMsg: "blaze_rod dropped.",
		},
		"drop missing": {
			line:   "drop diamond",
			expErr: "Item not found: diamond",
		},
		"craft missing ingredients": {
			line:   "craft blaze_powder ender_pearl",
			expErr: "You don't have those items!",
		},
		"craft incompatible": {
			setup:  []string{"pickup blaze_rod", "n", "pickup blaze_powder"},
			line:   "craft blaze_rod blaze_powder",
			expErr: "Incompatible items!",
		},
		"craft one word": {
			line:   "craft blaze_rod",
			expErr: "Craft what with what?",
		},
		"attack absent mob": {
			line:   "attack enderman",
			expErr: "There is no such mob here.",
		},
		"attack unarmed": {
			setup:  []string{"go east"},
			line:   "attack enderman",
			expErr: "You need a weapon to kill mobs!",
		},
		"attack armed": {
			setup:  []string{"s", "pickup iron_sword", "n", "go east"},
			line:   "attack enderman",
			expMsg: "* Enderman has died *\nDropped: ender_pearl (3kg)",
		},
		"quit with argument": {
			line:   "quit now",
			expErr: "Quit what?",
		},
		"message command": {
			line:   "say hello there",
			expMsg: "Steve says: hello there",
		},
		"look at item": {
			line:   "look blaze_rod",
			expMsg: "On the ground: blaze_rod (4kg)",
		},
		"look at mob": {
			setup:  []string{"go east"},
			line:   "look enderman",
			expMsg: "Enderman is here.",
		},
		"look at nothing": {
			line:   "look diamond",
			expErr: "You don't see diamond here.",
		},
		"help for command": {
			line:   "help pickup",
			expMsg: "pickup: \nUsage: pickup <item>\nAliases: get",
		},
		"prefix resolves": {
			line:   "inv",
			expMsg: "Inventory (0/10kg): Empty",
		},
		"ambiguous prefix": {
			line:   "g",
			expErr: "Did you mean: get, go?",
		},
		"unique prefix without args": {
			line:   "dr",
			expErr: "Drop what?",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			pub := &recordingPublisher{}
			w := newTestWorld(t, pub)
			h := newTestHandler(t, pub)

			for _, line := range tt.setup {
				if err := run(t, h, w, line); err != nil {
					t.Fatalf("setup %q: %v", line, err)
				}
			}

			err := run(t, h, w, tt.line)

			if tt.expErr != "" {
				var userErr *UserError
				if !errors.As(err, &userErr) {
					t.Fatalf("expected UserError containing %q, got %v", tt.expErr, err)
				}
				if !strings.HasPrefix(userErr.Message, tt.expErr) {
					t.Errorf("error = %q, expected prefix %q", userErr.Message, tt.expErr)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.expMsg != "" && !strings.HasPrefix(pub.last(), tt.expMsg) {
				t.Errorf("last message = %q, expected prefix %q", pub.last(), tt.expMsg)
			}
			if tt.expRoom != "" {
				testutil.AssertEqual(t, "room", w.Here().Id.String(), tt.expRoom)
			}
		})
	}
}

func TestHandler_ExecCause(t *testing.T) {
	tests := map[string]struct {
		line     string
		expCause error
	}{
		"drop what is not held": {line: "drop anvil", expCause: game.ErrItemNotFound},
		"pickup too heavy":      {line: "pickup anvil", expCause: game.ErrUnpickable},
		"back at spawn":         {line: "back", expCause: game.ErrNoHistory},
		"attack absent mob":     {line: "attack zombie", expCause: game.ErrEntityNotFound},
		"craft unknown pair":    {line: "craft anvil anvil", expCause: game.ErrItemNotFound},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			pub := &recordingPublisher{}
			w := newTestWorld(t, pub)
			h := newTestHandler(t, pub)

			err := run(t, h, w, tt.line)

			var userErr *UserError
			if !errors.As(err, &userErr) {
				t.Fatalf("expected UserError, got %v", err)
			}
			if !errors.Is(err, tt.expCause) {
				t.Errorf("cause = %v, expected %v", userErr.Cause, tt.expCause)
			}
		})
	}
}

func TestHandler_ExecWalkthrough(t *testing.T) {
	pub := &recordingPublisher{}
	w := newTestWorld(t, pub)
	h := newTestHandler(t, pub)

	lines := []string{
		"s", "pickup iron_sword", "n",
		"n", "pickup blaze_powder", "s",
		"go east", "attack enderman", "pickup ender_pearl",
		"craft ender_pearl blaze_powder",
	}
	for _, line := range lines {
		if err := run(t, h, w, line); err != nil {
			t.Fatalf("%q: %v", line, err)
		}
	}
	testutil.AssertEqual(t, "crafted", pub.last(), "Crafted: eye_of_ender")
	testutil.AssertEqual(t, "inventory", display.Inventory(w.Player().Inventory()), "Inventory (10/10kg): eye_of_ender (5kg), iron_sword (5kg)")

	for _, line := range []string{"go west", "s", "s"} {
		if err := run(t, h, w, line); err != nil {
			t.Fatalf("%q: %v", line, err)
		}
	}
	testutil.AssertEqual(t, "won", w.Won(), true)
	testutil.AssertEqual(t, "last message", pub.last(), "You've activated the End Portal! You win!")

	for _, m := range pub.msgs {
		testutil.AssertEqual(t, "subject", m.subject, testSubject)
	}
}

func TestHandler_ExecQuit(t *testing.T) {
	pub := &recordingPublisher{}
	w := newTestWorld(t, pub)
	h := newTestHandler(t, pub)

	if err := run(t, h, w, "quit"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "over", w.Over(), true)
	testutil.AssertEqual(t, "won", w.Won(), false)
}

func TestHandler_ExecHelp(t *testing.T) {
	pub := &recordingPublisher{}
	w := newTestWorld(t, pub)
	h := newTestHandler(t, pub)

	if err := run(t, h, w, "help"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exp := strings.Join([]string{
		"Current room: Plains",
		"Your command words are:",
		"  Combat: attack",
		"  Items: craft, drop, inventory, pickup",
		"  Movement: back, go, north, south",
		"  Other: help, look, map, quit, say",
	}, "\n")
	testutil.AssertEqual(t, "help", pub.last(), exp)
}

func TestNewDefaultHandler_Errors(t *testing.T) {
	tests := map[string]struct {
		cmd    *Command
		expErr string
	}{
		"unknown handler": {
			cmd:    &Command{Handler: "teleport"},
			expErr: `unknown handler "teleport"`,
		},
		"message without text": {
			cmd:    &Command{Handler: "message", Config: map[string]any{"message": ""}},
			expErr: "message must be a non-empty string",
		},
		"move with unknown config": {
			cmd:    &Command{Handler: "move", Config: map[string]any{"speed": "fast"}},
			expErr: `unknown config key "speed"`,
		},
		"alias clash": {
			cmd:    &Command{Handler: "look", Aliases: []string{"n"}},
			expErr: `alias "n" conflicts`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store := newTestCommands()
			_ = store.Save("zz-extra", tt.cmd)

			_, err := NewDefaultHandler(store, &recordingPublisher{})
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}
