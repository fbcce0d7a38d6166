package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/listener"
	"github.com/pixil98/go-adventure/internal/storage"
)

var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]{0,15}$`)

// Subscriber delivers messages published on a subject to handler. The
// returned func stops delivery.
type Subscriber interface {
	Subscribe(subject string, handler func(data []byte)) (func(), error)
}

type PlayerManager struct {
	cmdHandler *commands.Handler
	dict       *game.Dictionary
	scenarios  storage.Storer[*game.Scenario]
	bus        Subscriber
	pub        game.Publisher
	describe   game.Describer
	wrap       bool

	mu       sync.Mutex
	sessions map[string]context.CancelFunc
}

type PlayerManagerOpt func(*PlayerManager)

// WithDescriber sets how rooms are rendered for every session.
func WithDescriber(d game.Describer) PlayerManagerOpt {
	return func(m *PlayerManager) {
		m.describe = d
	}
}

// WithWordWrap wraps game output to the display width.
func WithWordWrap(enabled bool) PlayerManagerOpt {
	return func(m *PlayerManager) {
		m.wrap = enabled
	}
}

func NewPlayerManager(cmd *commands.Handler, dict *game.Dictionary, scenarios storage.Storer[*game.Scenario], bus Subscriber, pub game.Publisher, opts ...PlayerManagerOpt) *PlayerManager {
	m := &PlayerManager{
		cmdHandler: cmd,
		dict:       dict,
		scenarios:  scenarios,
		bus:        bus,
		pub:        pub,
		sessions:   make(map[string]context.CancelFunc),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start blocks until ctx is done, then ends every open session.
func (m *PlayerManager) Start(ctx context.Context) error {
	<-ctx.Done()

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, cancel := range m.sessions {
		slog.Info("ending session", "session", id)
		cancel()
	}
	return nil
}

// Sessions returns the number of sessions currently running.
func (m *PlayerManager) Sessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// RunSession plays games over rw until the player stops or disconnects.
func (m *PlayerManager) RunSession(ctx context.Context, rw io.ReadWriter) error {
	sessionId := uuid.NewString()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	m.mu.Lock()
	m.sessions[sessionId] = cancel
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		delete(m.sessions, sessionId)
		m.mu.Unlock()
	}()

	slog.InfoContext(ctx, "session started", "session", sessionId)
	err := m.runSession(ctx, sessionId, rw)
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		err = nil
	}
	slog.InfoContext(ctx, "session ended", "session", sessionId, "error", err)
	return err
}

func (m *PlayerManager) runSession(ctx context.Context, sessionId string, rw io.ReadWriter) error {
	in := newLineReader(ctx, rw)

	sc, err := m.chooseScenario(in, rw)
	if err != nil {
		return err
	}

	// A remote login name that would be accepted replaces the default.
	if user, ok := listener.RemoteUser(ctx); ok {
		if valid, _ := m.validateName(user); valid {
			sc.PlayerName = user
		}
	}

	name, err := Prompt(in, rw, fmt.Sprintf("What is your name? [%s] ", sc.PlayerName),
		WithValidator(m.validateName), WithMaxTries(3))
	if err != nil {
		return err
	}
	if name != "" {
		sc.PlayerName = name
	}

	for {
		won, err := m.play(ctx, sessionId, in, rw, sc)
		if err != nil {
			return err
		}
		if !won {
			break
		}

		again, err := PromptYN(in, rw, "Play again? (yes/no) ")
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}

	_, err = io.WriteString(rw, "Thank you for playing. Good bye.\n")
	return err
}

// chooseScenario picks the only scenario, or asks the player when there
// are several.
func (m *PlayerManager) chooseScenario(in LineReader, w io.Writer) (game.Scenario, error) {
	all := m.scenarios.GetAll()
	switch len(all) {
	case 0:
		return game.Scenario{}, fmt.Errorf("no scenarios loaded")
	case 1:
		for _, sc := range all {
			return *sc, nil
		}
	}

	id, err := NewSelector(all).Prompt(in, w, "Choose an adventure:")
	if err != nil {
		return game.Scenario{}, err
	}
	return *all[id], nil
}

func (m *PlayerManager) validateName(name string) (bool, string) {
	if name == "" {
		return true, ""
	}
	if !namePattern.MatchString(name) {
		return false, "Names are one word of letters and digits.\n"
	}
	for _, mob := range m.dict.Mobiles.GetAll() {
		if strings.EqualFold(mob.Name, name) {
			return false, "That name belongs to a mob.\n"
		}
	}
	return true, ""
}

// play runs a single game. Narration for the session is routed from the
// bus back to the connection.
func (m *PlayerManager) play(ctx context.Context, sessionId string, in LineReader, w io.Writer, sc game.Scenario) (bool, error) {
	subject := game.SessionSubject(sessionId)

	unsubscribe, err := m.bus.Subscribe(subject, func(data []byte) {
		msg := string(data)
		if m.wrap {
			msg = display.Wrap(msg)
		}
		if _, err := io.WriteString(w, msg+"\n"); err != nil {
			slog.Warn("failed to write to player", "session", sessionId, "error", err)
		}
	})
	if err != nil {
		return false, fmt.Errorf("subscribing to %s: %w", subject, err)
	}
	defer unsubscribe()

	opts := []game.WorldOpt{game.WithNarration(m.pub, subject)}
	if m.describe != nil {
		opts = append(opts, game.WithDescriber(m.describe))
	}
	world, err := game.NewWorld(m.dict, sc, opts...)
	if err != nil {
		return false, fmt.Errorf("building world: %w", err)
	}

	p := &Player{
		conn:       w,
		in:         in,
		sessionId:  sessionId,
		subject:    subject,
		world:      world,
		cmdHandler: m.cmdHandler,
	}
	return p.Play(ctx)
}
