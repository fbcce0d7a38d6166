package game

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

// Item defines a catalog entry loaded from asset files. Items carry no
// per-instance state, so inventories share the catalog pointer.
type Item struct {
	// Name is the word players type to refer to the item (e.g., "iron_sword")
	Name string `json:"name" yaml:"name"`

	Weight float64 `json:"weight" yaml:"weight"`

	// Pickable items can be moved between rooms and inventories
	Pickable bool `json:"pickable" yaml:"pickable"`

	// Damage marks the item as a weapon when positive
	Damage int `json:"damage,omitempty" yaml:"damage,omitempty"`
}

// Validate satisfies storage.ValidatingSpec
func (i *Item) Validate() error {
	el := errors.NewErrorList()
	if i.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	if strings.ContainsAny(i.Name, " \t") {
		el.Add(fmt.Errorf("item name %q must be a single word", i.Name))
	}
	if i.Weight < 0 {
		el.Add(fmt.Errorf("item weight must not be negative"))
	}
	if i.Damage < 0 {
		el.Add(fmt.Errorf("item damage must not be negative"))
	}
	return el.Err()
}

// MatchName returns true if name refers to this item (case-insensitive).
func (i *Item) MatchName(name string) bool {
	return strings.EqualFold(i.Name, name)
}

// IsWeapon reports whether the item can be used to attack.
func (i *Item) IsWeapon() bool {
	return i.Damage > 0
}

func (i *Item) String() string {
	return fmt.Sprintf("%s (%gkg)", i.Name, i.Weight)
}
