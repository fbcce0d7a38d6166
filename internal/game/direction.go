package game

import (
	"fmt"
	"strings"
)

// Direction labels an exit out of a room.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every direction in display order.
var Directions = []Direction{North, East, South, West}

var directionLabels = map[Direction]string{
	North: "north",
	East:  "east",
	South: "south",
	West:  "west",
}

func (d Direction) String() string {
	if l, ok := directionLabels[d]; ok {
		return l
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Opposite returns the direction pointing back the way d came.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// ParseDirection converts a label such as "North" to a Direction.
func ParseDirection(label string) (Direction, error) {
	l := strings.ToLower(strings.TrimSpace(label))
	for _, d := range Directions {
		if directionLabels[d] == l {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", label)
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
