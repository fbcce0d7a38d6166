package messaging

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Publisher sends data to a subject.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Fanout publishes every message to each of its publishers in order.
type Fanout []Publisher

func (f Fanout) Publish(subject string, data []byte) error {
	el := errors.NewErrorList()
	for i, p := range f {
		if err := p.Publish(subject, data); err != nil {
			el.Add(fmt.Errorf("publisher %d: %w", i, err))
		}
	}
	return el.Err()
}
