package display

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pixil98/go-adventure/internal/game"
)

// DefaultRoomTemplate renders a room the way a player sees it on arrival.
const DefaultRoomTemplate = `You are in {{ .Description }}
Exits:{{ range .Exits }} {{ .Direction }} ({{ .Room }}){{ end }}
Items: {{ if .Items }}{{ join " " .Items }}{{ else }}None{{ end }}
Mobs: {{ if .Mobs }}{{ join " " .Mobs }}{{ else }}None{{ end }}`

// ExitView is one exit as shown to the player.
type ExitView struct {
	Direction string
	Room      string
}

// RoomView is the template-facing view of a room.
type RoomView struct {
	Name        string
	Description string
	Exits       []ExitView
	Items       []string
	Mobs        []string
}

// NewRoomView snapshots what the player can see in room.
func NewRoomView(w *game.World, room *game.RoomInstance) *RoomView {
	v := &RoomView{
		Name:        room.Name(),
		Description: room.Room.Description,
	}
	for _, d := range w.Graph().Exits(room) {
		v.Exits = append(v.Exits, ExitView{
			Direction: d.String(),
			Room:      w.Graph().Exit(room, d).Name(),
		})
	}
	for _, it := range room.Items.Items() {
		v.Items = append(v.Items, it.String())
	}
	for _, m := range w.Tracker().MobsIn(room) {
		v.Mobs = append(v.Mobs, Title(m.Name()))
	}
	return v
}

// NewRoomDescriber compiles tmpl into a game.Describer. An empty tmpl uses
// DefaultRoomTemplate.
func NewRoomDescriber(tmpl string) (game.Describer, error) {
	if tmpl == "" {
		tmpl = DefaultRoomTemplate
	}
	t, err := template.New("room").Funcs(sprig.TxtFuncMap()).Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("parsing room template: %w", err)
	}

	return func(w *game.World, room *game.RoomInstance) string {
		var buf bytes.Buffer
		if err := t.Execute(&buf, NewRoomView(w, room)); err != nil {
			return fmt.Sprintf("You are in %s", room.Name())
		}
		return Wrap(buf.String())
	}, nil
}

// ExitList renders the exits of room on one line.
func ExitList(g *game.Graph, room *game.RoomInstance) string {
	var sb strings.Builder
	sb.WriteString("Exits:")
	for _, d := range g.Exits(room) {
		fmt.Fprintf(&sb, " %s (%s)", d, g.Exit(room, d).Name())
	}
	return sb.String()
}

// Map lists every room and its exits, marking the one the player is in.
func Map(g *game.Graph, here *game.RoomInstance) string {
	lines := make([]string, 0, len(g.Rooms()))
	for _, r := range g.Rooms() {
		marker := " "
		if r == here {
			marker = "*"
		}
		var exits []string
		for _, d := range g.Exits(r) {
			exits = append(exits, fmt.Sprintf("%s->%s", d, g.Exit(r, d).Name()))
		}
		if len(exits) == 0 {
			exits = append(exits, "no exits")
		}
		lines = append(lines, fmt.Sprintf("%s %-12s %s", marker, r.Name(), strings.Join(exits, ", ")))
	}
	return strings.Join(lines, "\n")
}
