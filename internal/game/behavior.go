package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Behavior kinds accepted in mobile assets.
const (
	BehaviorNone     = "none"
	BehaviorTeleport = "teleport"
	BehaviorPatrol   = "patrol"
	BehaviorNoise    = "noise"
)

// Behavior is a mobile's autonomous action. Implementations may move the
// mobile through the tracker; the tracker keeps them from re-entering.
type Behavior interface {
	Perform(t *Tracker, self *MobileInstance) error
}

// BehaviorFunc adapts a function to the Behavior interface.
type BehaviorFunc func(t *Tracker, self *MobileInstance) error

func (f BehaviorFunc) Perform(t *Tracker, self *MobileInstance) error {
	return f(t, self)
}

// Teleport throws the mobile to a random room other than its current one.
type Teleport struct {
	// Chance is the probability of teleporting each time the action runs
	Chance float64
}

func (b Teleport) Perform(t *Tracker, self *MobileInstance) error {
	if t.Rand().Float64() >= b.Chance {
		return nil
	}

	cur, err := t.Location(self)
	if err != nil {
		return err
	}

	var candidates []*RoomInstance
	for _, r := range t.Graph().Rooms() {
		if r != cur {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	dest, err := t.Teleport(self, candidates[t.Rand().IntN(len(candidates))])
	if err != nil {
		return err
	}
	t.Narrate(fmt.Sprintf("* %s has teleported to %s *", self.Name(), dest.Name()))
	return nil
}

// Patrol walks a fixed route, one step each time the action runs. A Patrol
// holds its position on the route and must not be shared between mobiles.
type Patrol struct {
	Route []Direction
	next  int
}

func (b *Patrol) Perform(t *Tracker, self *MobileInstance) error {
	if len(b.Route) == 0 {
		return nil
	}
	dir := b.Route[b.next%len(b.Route)]
	b.next = (b.next + 1) % len(b.Route)

	dest, err := t.Move(self, dir)
	if err != nil {
		return fmt.Errorf("patrolling %s: %w", dir, err)
	}
	t.Narrate(fmt.Sprintf("* %s has moved to %s *", self.Name(), dest.Name()))
	return nil
}

// Noise makes the mobile announce itself.
type Noise struct {
	Sound string
}

func (b Noise) Perform(t *Tracker, self *MobileInstance) error {
	t.Narrate(fmt.Sprintf("%s: %s", self.Name(), b.Sound))
	return nil
}

// BehaviorSpec is the asset form of a Behavior.
type BehaviorSpec struct {
	Kind   string   `json:"kind,omitempty" yaml:"kind,omitempty"`
	Chance float64  `json:"chance,omitempty" yaml:"chance,omitempty"`
	Sound  string   `json:"sound,omitempty" yaml:"sound,omitempty"`
	Route  []string `json:"route,omitempty" yaml:"route,omitempty"`
}

// Validate checks the fields required by the behavior kind.
func (s BehaviorSpec) Validate() error {
	el := errors.NewErrorList()
	switch s.Kind {
	case "", BehaviorNone:
	case BehaviorTeleport:
		if s.Chance < 0 || s.Chance > 1 {
			el.Add(fmt.Errorf("teleport chance must be between 0 and 1"))
		}
	case BehaviorPatrol:
		if len(s.Route) == 0 {
			el.Add(fmt.Errorf("patrol route is required"))
		}
		for _, step := range s.Route {
			if _, err := ParseDirection(step); err != nil {
				el.Add(fmt.Errorf("patrol route: %w", err))
			}
		}
	case BehaviorNoise:
		if s.Sound == "" {
			el.Add(fmt.Errorf("noise sound is required"))
		}
	default:
		el.Add(fmt.Errorf("unknown behavior kind %q", s.Kind))
	}
	return el.Err()
}

// Build returns a fresh Behavior, or nil for mobiles without one.
func (s BehaviorSpec) Build() (Behavior, error) {
	switch s.Kind {
	case "", BehaviorNone:
		return nil, nil
	case BehaviorTeleport:
		return Teleport{Chance: s.Chance}, nil
	case BehaviorPatrol:
		route := make([]Direction, 0, len(s.Route))
		for _, step := range s.Route {
			d, err := ParseDirection(step)
			if err != nil {
				return nil, err
			}
			route = append(route, d)
		}
		return &Patrol{Route: route}, nil
	case BehaviorNoise:
		return Noise{Sound: s.Sound}, nil
	default:
		return nil, fmt.Errorf("unknown behavior kind %q", s.Kind)
	}
}
