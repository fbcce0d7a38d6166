package game

import (
	"fmt"
	"maps"
	"slices"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

// Dictionary holds all game definition stores. It provides a single
// reference that can be passed to resolution methods so they all
// share the same signature.
type Dictionary struct {
	Items   storage.Storer[*Item]
	Rooms   storage.Storer[*Room]
	Mobiles storage.Storer[*Mobile]
	Recipes storage.Storer[*Recipe]
}

// Resolve resolves all foreign key references and checks that names are
// unique where players refer to things by name.
func (d *Dictionary) Resolve() error {
	el := errors.NewErrorList()

	for _, id := range sortedIds(d.Rooms) {
		if err := d.Rooms.Get(string(id)).Resolve(d); err != nil {
			el.Add(fmt.Errorf("room %s: %w", id, err))
		}
	}

	for _, id := range sortedIds(d.Mobiles) {
		if err := d.Mobiles.Get(string(id)).Resolve(d); err != nil {
			el.Add(fmt.Errorf("mobile %s: %w", id, err))
		}
	}

	for _, id := range sortedIds(d.Recipes) {
		if err := d.Recipes.Get(string(id)).Resolve(d); err != nil {
			el.Add(fmt.Errorf("recipe %s: %w", id, err))
		}
	}

	el.Add(uniqueNames("item", d.Items, func(i *Item) string { return i.Name }))
	el.Add(uniqueNames("mobile", d.Mobiles, func(m *Mobile) string { return m.Name }))

	return el.Err()
}

// RecipeBook returns a book over every recipe in the dictionary.
func (d *Dictionary) RecipeBook() *RecipeBook {
	var recipes []*Recipe
	for _, id := range sortedIds(d.Recipes) {
		recipes = append(recipes, d.Recipes.Get(string(id)))
	}
	return NewRecipeBook(recipes...)
}

// FindItem returns the catalog item with the given name, or nil.
func (d *Dictionary) FindItem(name string) *Item {
	for _, it := range d.Items.GetAll() {
		if it.MatchName(name) {
			return it
		}
	}
	return nil
}

func sortedIds[T storage.ValidatingSpec](st storage.Storer[T]) []storage.Identifier {
	return slices.Sorted(maps.Keys(st.GetAll()))
}

func uniqueNames[T storage.ValidatingSpec](kind string, st storage.Storer[T], name func(T) string) error {
	el := errors.NewErrorList()
	seen := make(map[string]storage.Identifier)
	for _, id := range sortedIds(st) {
		k := key(name(st.Get(string(id))))
		if other, ok := seen[k]; ok {
			el.Add(fmt.Errorf("%s %s: name %q already used by %s", kind, id, k, other))
			continue
		}
		seen[k] = id
	}
	return el.Err()
}
