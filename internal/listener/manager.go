package listener

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
)

// SessionRunner plays a game over a connection until it ends.
type SessionRunner interface {
	RunSession(ctx context.Context, rw io.ReadWriter) error
}

type ConnectionManager struct {
	sr     SessionRunner
	max    int64
	active atomic.Int64
}

type ConnectionManagerOpt func(*ConnectionManager)

// WithMaxConnections turns away connections beyond n. Zero means no limit.
func WithMaxConnections(n int) ConnectionManagerOpt {
	return func(m *ConnectionManager) {
		m.max = int64(n)
	}
}

func NewConnectionManager(sr SessionRunner, opts ...ConnectionManagerOpt) *ConnectionManager {
	m := &ConnectionManager{
		sr: sr,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Active returns the number of connections currently playing.
func (m *ConnectionManager) Active() int {
	return int(m.active.Load())
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	n := m.active.Add(1)
	defer m.active.Add(-1)

	if m.max > 0 && n > m.max {
		slog.WarnContext(ctx, "connection refused", "active", n-1, "max", m.max)
		if _, err := io.WriteString(conn, "The server is full. Please try again later.\n"); err != nil {
			slog.WarnContext(ctx, "writing refusal", "error", err)
		}
		return
	}

	if err := m.sr.RunSession(ctx, conn); err != nil {
		slog.WarnContext(ctx, "player session", "error", err)
	}
}
