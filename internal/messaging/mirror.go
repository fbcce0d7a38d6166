package messaging

import (
	"context"
	"log/slog"
)

// NatsPublisher mirrors messages onto a NatsServer. Messages published
// before the server is ready are dropped.
type NatsPublisher struct {
	server *NatsServer
}

func NewNatsPublisher(server *NatsServer) *NatsPublisher {
	return &NatsPublisher{server: server}
}

func (p *NatsPublisher) Publish(subject string, data []byte) error {
	select {
	case <-p.server.Ready():
		return p.server.Publish(subject, data)
	default:
		return nil
	}
}

// EventLog logs every message published under a subject pattern. It is run
// as a worker alongside the NatsServer it reads from.
type EventLog struct {
	server  *NatsServer
	subject string
}

func NewEventLog(server *NatsServer, subject string) *EventLog {
	return &EventLog{server: server, subject: subject}
}

func (l *EventLog) Start(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return nil
	case <-l.server.Ready():
	}

	unsub, err := l.server.Subscribe(l.subject, func(data []byte) {
		slog.DebugContext(ctx, "game event", "subject", l.subject, "data", string(data))
	})
	if err != nil {
		return err
	}
	defer unsub()

	<-ctx.Done()
	return nil
}
