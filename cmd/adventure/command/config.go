package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// FrontendType selects how players reach the game.
type FrontendType int

const (
	// FrontendServer serves remote players through the configured listeners.
	FrontendServer FrontendType = iota
	// FrontendConsole plays a single game on stdin and stdout.
	FrontendConsole
	// FrontendTUI plays a single game in a full screen terminal UI.
	FrontendTUI
)

func (ft *FrontendType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "server":
		*ft = FrontendServer
	case "console":
		*ft = FrontendConsole
	case "tui":
		*ft = FrontendTUI
	default:
		return fmt.Errorf("unknown frontend: %s", text)
	}
	return nil
}

type Config struct {
	Frontend  FrontendType     `json:"frontend"`
	Listeners []ListenerConfig `json:"listeners"`
	Storage   StorageConfig    `json:"storage"`
	Nats      NatsConfig       `json:"nats"`
	Session   SessionConfig    `json:"session"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.Frontend == FrontendServer && len(c.Listeners) == 0 {
		el.Add(fmt.Errorf("at least one listener is required for the server frontend"))
	}

	for i, l := range c.Listeners {
		err := l.validate()
		if err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	el.Add(c.Storage.validate())
	el.Add(c.Nats.validate())
	el.Add(c.Session.validate())

	return el.Err()
}
