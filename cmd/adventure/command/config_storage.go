package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

type StorageConfig struct {
	Commands  AssetConfig[*commands.Command] `json:"commands"`
	Items     AssetConfig[*game.Item]        `json:"items"`
	Rooms     AssetConfig[*game.Room]        `json:"rooms"`
	Mobiles   AssetConfig[*game.Mobile]      `json:"mobiles"`
	Recipes   AssetConfig[*game.Recipe]      `json:"recipes"`
	Scenarios AssetConfig[*game.Scenario]    `json:"scenarios"`
}

func (c *StorageConfig) BuildDictionary() (*game.Dictionary, error) {
	items, err := c.Items.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating item store: %w", err)
	}
	rooms, err := c.Rooms.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating room store: %w", err)
	}
	mobiles, err := c.Mobiles.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating mobile store: %w", err)
	}
	recipes, err := c.Recipes.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating recipe store: %w", err)
	}

	dict := &game.Dictionary{
		Items:   items,
		Rooms:   rooms,
		Mobiles: mobiles,
		Recipes: recipes,
	}

	if err := dict.Resolve(); err != nil {
		return nil, fmt.Errorf("resolving references: %w", err)
	}

	return dict, nil
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Commands.Validate("commands"))
	el.Add(c.Items.Validate("items"))
	el.Add(c.Rooms.Validate("rooms"))
	el.Add(c.Mobiles.Validate("mobiles"))
	el.Add(c.Recipes.Validate("recipes"))
	el.Add(c.Scenarios.Validate("scenarios"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
