package game

// Entity is anything whose location the Tracker records: the player's
// character or a mobile. Entities know nothing about where they are.
type Entity interface {
	// Name is unique within a running game.
	Name() string
	Inventory() *Inventory
}

// Actor holds properties shared between characters and mobiles.
type Actor struct {
	name      string
	inventory *Inventory
}

// NewActor creates an actor with an empty inventory of the given capacity.
func NewActor(name string, capacity float64) Actor {
	return Actor{
		name:      name,
		inventory: NewInventory(capacity),
	}
}

func (a *Actor) Name() string {
	return a.name
}

func (a *Actor) Inventory() *Inventory {
	return a.inventory
}

// Character is the player's entity.
type Character struct {
	Actor
}

// NewCharacter creates a character carrying at most capacity weight.
func NewCharacter(name string, capacity float64) *Character {
	return &Character{Actor: NewActor(name, capacity)}
}

// HasWeapon reports whether the character is holding a weapon.
func (c *Character) HasWeapon() bool {
	for _, it := range c.Inventory().Items() {
		if it.IsWeapon() {
			return true
		}
	}
	return false
}
