package command

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-errors"
)

type SessionConfig struct {
	// MaxConnections caps concurrent remote players. Zero means no limit.
	MaxConnections int  `json:"max_connections"`
	WordWrap       bool `json:"word_wrap"`
	// RoomTemplate overrides how rooms are described.
	RoomTemplate string `json:"room_template,omitempty"`
}

func (c *SessionConfig) validate() error {
	el := errors.NewErrorList()

	if c.MaxConnections < 0 {
		el.Add(fmt.Errorf("max_connections must not be negative"))
	}
	if _, err := c.buildDescriber(); err != nil {
		el.Add(err)
	}

	return el.Err()
}

func (c *SessionConfig) buildDescriber() (game.Describer, error) {
	d, err := display.NewRoomDescriber(c.RoomTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing room_template: %w", err)
	}
	return d, nil
}
