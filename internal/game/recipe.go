package game

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

// Recipe combines two ingredients, in either order, into a result.
type Recipe struct {
	Ingredients []storage.SmartIdentifier[*Item] `json:"ingredients" yaml:"ingredients"`
	Result      storage.SmartIdentifier[*Item]   `json:"result" yaml:"result"`
}

// Validate satisfies storage.ValidatingSpec
func (r *Recipe) Validate() error {
	el := errors.NewErrorList()
	if len(r.Ingredients) != 2 {
		el.Add(fmt.Errorf("recipe needs exactly 2 ingredients, got %d", len(r.Ingredients)))
	} else if r.Ingredients[0].Id() == r.Ingredients[1].Id() {
		el.Add(fmt.Errorf("recipe ingredients must differ"))
	}
	for _, in := range r.Ingredients {
		el.Add(in.Validate())
	}
	el.Add(r.Result.Validate())
	return el.Err()
}

// Resolve resolves item references from the dictionary.
func (r *Recipe) Resolve(dict *Dictionary) error {
	el := errors.NewErrorList()
	for i := range r.Ingredients {
		el.Add(r.Ingredients[i].Resolve(dict.Items))
	}
	el.Add(r.Result.Resolve(dict.Items))
	return el.Err()
}

// Matches reports whether a and b are this recipe's ingredients in any order.
func (r *Recipe) Matches(a, b *Item) bool {
	if len(r.Ingredients) != 2 || a == nil || b == nil {
		return false
	}
	x, y := r.Ingredients[0].Get(), r.Ingredients[1].Get()
	return (a == x && b == y) || (a == y && b == x)
}

// RecipeBook looks up recipes by ingredients.
type RecipeBook struct {
	recipes []*Recipe
}

// NewRecipeBook creates a book over already resolved recipes.
func NewRecipeBook(recipes ...*Recipe) *RecipeBook {
	return &RecipeBook{recipes: recipes}
}

// Find returns the recipe combining a and b, or ErrNoRecipe.
func (b *RecipeBook) Find(x, y *Item) (*Recipe, error) {
	for _, r := range b.recipes {
		if r.Matches(x, y) {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w for %s and %s", ErrNoRecipe, x.Name, y.Name)
}
