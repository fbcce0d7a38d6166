package player

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/listener"
	"github.com/pixil98/go-adventure/internal/messaging"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedConn struct {
	io.Reader
	out bytes.Buffer
}

func (c *scriptedConn) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

func newScriptedConn(lines ...string) *scriptedConn {
	return &scriptedConn{Reader: strings.NewReader(strings.Join(lines, "\n") + "\n")}
}

func ref[T storage.ValidatingSpec](id string) storage.SmartIdentifier[T] {
	return storage.NewSmartIdentifier[T](id)
}

func testDictionary(t *testing.T) *game.Dictionary {
	t.Helper()
	dict := &game.Dictionary{
		Items: storage.NewMemoryStore(map[string]*game.Item{
			"eye-of-ender": {Name: "eye_of_ender", Weight: 5, Pickable: true},
		}),
		Rooms: storage.NewMemoryStore(map[string]*game.Room{
			"plains": {
				Name:        "Plains",
				Description: "a grassy starting area",
				Exits:       map[string]storage.SmartIdentifier[*game.Room]{"north": ref[*game.Room]("portal-room")},
				Items:       []storage.SmartIdentifier[*game.Item]{ref[*game.Item]("eye-of-ender")},
			},
			"portal-room": {
				Name:        "Portal Room",
				Description: "the end portal",
				Exits:       map[string]storage.SmartIdentifier[*game.Room]{"south": ref[*game.Room]("plains")},
				OnEnter:     game.EnterPortal,
			},
		}),
		Mobiles: storage.NewMemoryStore(map[string]*game.Mobile{
			"zombie": {Name: "zombie", SpawnRoom: ref[*game.Room]("plains")},
		}),
		Recipes: storage.NewMemoryStore(map[string]*game.Recipe{}),
	}
	require.NoError(t, dict.Resolve())
	return dict
}

func testScenarios(extra ...*game.Scenario) *storage.MemoryStore[*game.Scenario] {
	recs := map[string]*game.Scenario{
		"mini": {
			Title:      "Mini Minecraft",
			Intro:      "Find items and craft an Eye of Ender to win.",
			PlayerName: "Steve",
			Capacity:   5,
			StartRoom:  "plains",
			GoalRoom:   "portal-room",
			GoalItem:   "eye_of_ender",
			Seed:       3,
		},
	}
	for _, sc := range extra {
		recs[strings.ToLower(strings.ReplaceAll(sc.Title, " ", "-"))] = sc
	}
	return storage.NewMemoryStore(recs)
}

func testCommands() *storage.MemoryStore[*commands.Command] {
	str := func(name string) commands.InputSpec {
		return commands.InputSpec{Name: name, Type: commands.InputTypeString, Required: true}
	}
	return storage.NewMemoryStore(map[string]*commands.Command{
		"go":     {Handler: "move", Inputs: []commands.InputSpec{str("direction")}},
		"pickup": {Handler: "pickup", Inputs: []commands.InputSpec{str("item")}},
		"quit":   {Handler: "quit", Usage: "Quit what?"},
	})
}

func newTestManager(t *testing.T, scenarios storage.Storer[*game.Scenario]) *PlayerManager {
	t.Helper()
	bus := messaging.NewBus()
	h, err := commands.NewDefaultHandler(testCommands(), bus)
	require.NoError(t, err)
	return NewPlayerManager(h, testDictionary(t), scenarios, bus, bus)
}

func TestRunSession_Win(t *testing.T) {
	m := newTestManager(t, testScenarios())
	conn := newScriptedConn("", "pickup eye_of_ender", "go north", "no")

	err := m.RunSession(t.Context(), conn)
	require.NoError(t, err)

	out := conn.out.String()
	assert.Contains(t, out, "What is your name? [Steve] ")
	assert.Contains(t, out, "Welcome to Mini Minecraft!\nYou are Steve\nFind items and craft an Eye of Ender to win.")
	assert.Contains(t, out, "eye_of_ender picked up.")
	assert.Contains(t, out, "You've activated the End Portal! You win!")
	assert.Contains(t, out, "Play again? (yes/no) ")
	assert.True(t, strings.HasSuffix(out, "Thank you for playing. Good bye.\n"))
	assert.Equal(t, 0, m.Sessions())
}

func TestRunSession_PlayAgain(t *testing.T) {
	m := newTestManager(t, testScenarios())
	conn := newScriptedConn("Alex",
		"pickup eye_of_ender", "go north", "maybe", "yes",
		"pickup eye_of_ender", "go north", "n")

	require.NoError(t, m.RunSession(t.Context(), conn))

	out := conn.out.String()
	assert.Equal(t, 2, strings.Count(out, "You are Alex"))
	assert.Equal(t, 2, strings.Count(out, "You win!"))
	assert.Contains(t, out, "enter 'yes' or 'no'")
}

func TestRunSession_Quit(t *testing.T) {
	m := newTestManager(t, testScenarios())
	conn := newScriptedConn("", "quit now", "dance", "quit")

	require.NoError(t, m.RunSession(t.Context(), conn))

	out := conn.out.String()
	assert.Contains(t, out, "Quit what?")
	assert.Contains(t, out, "I don't know what you mean...")
	assert.NotContains(t, out, "Play again?")
	assert.Contains(t, out, "Thank you for playing. Good bye.")
}

func TestRunSession_Disconnect(t *testing.T) {
	m := newTestManager(t, testScenarios())
	conn := newScriptedConn("", "go north")

	require.NoError(t, m.RunSession(t.Context(), conn))
	assert.Contains(t, conn.out.String(), "You don't have the eye_of_ender.")
	assert.NotContains(t, conn.out.String(), "Good bye")
}

func TestRunSession_Names(t *testing.T) {
	tests := map[string]struct {
		lines  []string
		expOut string
		expErr error
	}{
		"two words": {
			lines:  []string{"Big Steve", "Alex", "quit"},
			expOut: "Names are one word of letters and digits.",
		},
		"mob name": {
			lines:  []string{"Zombie", "Alex", "quit"},
			expOut: "That name belongs to a mob.",
		},
		"too many tries": {
			lines:  []string{"a b", "c d", "e f"},
			expErr: ErrTooManyTries,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := newTestManager(t, testScenarios())
			conn := newScriptedConn(tt.lines...)

			err := m.RunSession(t.Context(), conn)
			if tt.expErr != nil {
				assert.ErrorIs(t, err, tt.expErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, conn.out.String(), tt.expOut)
			assert.Contains(t, conn.out.String(), "You are Alex")
		})
	}
}

func TestRunSession_RemoteUser(t *testing.T) {
	tests := map[string]struct {
		user      string
		expPrompt string
		expName   string
	}{
		"login name offered": {
			user:      "alex",
			expPrompt: "What is your name? [alex] ",
			expName:   "You are alex",
		},
		"mob login ignored": {
			user:      "zombie",
			expPrompt: "What is your name? [Steve] ",
			expName:   "You are Steve",
		},
		"invalid login ignored": {
			user:      "not a name",
			expPrompt: "What is your name? [Steve] ",
			expName:   "You are Steve",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := newTestManager(t, testScenarios())
			conn := newScriptedConn("", "quit")

			ctx := listener.WithRemoteUser(t.Context(), tt.user)
			require.NoError(t, m.RunSession(ctx, conn))
			assert.Contains(t, conn.out.String(), tt.expPrompt)
			assert.Contains(t, conn.out.String(), tt.expName)
		})
	}
}

func TestRunSession_ChooseScenario(t *testing.T) {
	heavy := &game.Scenario{
		Title:      "Heavy Load",
		PlayerName: "Alex",
		Capacity:   1,
		StartRoom:  "plains",
		GoalRoom:   "portal-room",
		GoalItem:   "eye_of_ender",
	}
	m := newTestManager(t, testScenarios(heavy))
	conn := newScriptedConn("9", "1", "", "pickup eye_of_ender", "quit")

	require.NoError(t, m.RunSession(t.Context(), conn))

	out := conn.out.String()
	assert.Contains(t, out, "Choose an adventure:")
	assert.Contains(t, out, " 1. Heavy Load")
	assert.Contains(t, out, " 2. Mini Minecraft")
	assert.Contains(t, out, "Invalid selection!")
	assert.Contains(t, out, "Welcome to Heavy Load!\nYou are Alex")
	assert.Contains(t, out, "Inventory full.")
}

func TestRunSession_NoScenarios(t *testing.T) {
	m := newTestManager(t, storage.NewMemoryStore(map[string]*game.Scenario{}))
	err := m.RunSession(t.Context(), newScriptedConn("quit"))
	assert.ErrorContains(t, err, "no scenarios loaded")
}

func TestSelector(t *testing.T) {
	s := NewSelector(map[storage.Identifier]*game.Scenario{
		"b": {Title: "Beta"},
		"a": {Title: "Alpha"},
	})

	assert.Equal(t, storage.Identifier("a"), s.Select(1))
	assert.Equal(t, storage.Identifier("b"), s.Select(2))
	assert.Equal(t, storage.Identifier(""), s.Select(0))
	assert.Equal(t, storage.Identifier(""), s.Select(3))
}
