package command

import (
	"context"
	"fmt"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/listener"
	"github.com/pixil98/go-adventure/internal/messaging"
	"github.com/pixil98/go-adventure/internal/player"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-adventure/internal/tui"
	"github.com/pixil98/go-service"
)

// WorkerBuilder returns the builder handed to service.NewApp. Single player
// frontends call stop when their game ends so the whole app shuts down.
func WorkerBuilder(stop context.CancelFunc) func(config any) (service.WorkerList, error) {
	return func(config any) (service.WorkerList, error) {
		cfg, ok := config.(*Config)
		if !ok {
			return nil, fmt.Errorf("unable to cast config")
		}
		return BuildWorkers(cfg, stop)
	}
}

func BuildWorkers(cfg *Config, stop context.CancelFunc) (service.WorkerList, error) {
	workers := service.WorkerList{}

	dict, err := cfg.Storage.BuildDictionary()
	if err != nil {
		return nil, fmt.Errorf("building dictionary: %w", err)
	}
	scenarios, err := cfg.Storage.Scenarios.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating scenario store: %w", err)
	}
	cmds, err := cfg.Storage.Commands.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating command store: %w", err)
	}

	// Narration always reaches sessions through the in-process bus and is
	// optionally mirrored onto NATS
	bus := messaging.NewBus()
	pub := messaging.Fanout{bus}

	if cfg.Nats.Enabled {
		natsServer, err := cfg.Nats.buildNatsServer()
		if err != nil {
			return nil, fmt.Errorf("creating nats server: %w", err)
		}
		workers["nats"] = natsServer
		pub = append(pub, messaging.NewNatsPublisher(natsServer))

		if cfg.Nats.LogEvents {
			workers["events"] = messaging.NewEventLog(natsServer, EventSubject)
		}
	}

	cmdHandler, err := commands.NewDefaultHandler(cmds, pub)
	if err != nil {
		return nil, fmt.Errorf("creating command handler: %w", err)
	}

	describe, err := cfg.Session.buildDescriber()
	if err != nil {
		return nil, err
	}

	pm := player.NewPlayerManager(cmdHandler, dict, scenarios, bus, pub,
		player.WithDescriber(describe),
		player.WithWordWrap(cfg.Session.WordWrap),
	)
	workers["players"] = pm

	switch cfg.Frontend {
	case FrontendConsole:
		workers["console"] = stopOnExit(newConsole(pm), stop)
	case FrontendTUI:
		workers["tui"] = stopOnExit(tui.New(pm, title(scenarios)), stop)
	default:
		cm := listener.NewConnectionManager(pm, listener.WithMaxConnections(cfg.Session.MaxConnections))

		listeners := make(service.WorkerList, len(cfg.Listeners))
		for i, l := range cfg.Listeners {
			w, err := l.BuildListener(cm)
			if err != nil {
				return nil, fmt.Errorf("creating listener %d: %w", i, err)
			}
			listeners[fmt.Sprintf("listener-%d", i)] = w
		}
		workers["listeners"] = &listeners
	}

	return workers, nil
}

// title names the terminal UI after the only scenario, if there is just one.
func title(scenarios storage.Storer[*game.Scenario]) string {
	all := scenarios.GetAll()
	if len(all) == 1 {
		for _, sc := range all {
			return sc.Selector()
		}
	}
	return "Adventure"
}

type exitWorker struct {
	w    service.Worker
	stop context.CancelFunc
}

// stopOnExit calls stop once w returns.
func stopOnExit(w service.Worker, stop context.CancelFunc) service.Worker {
	return &exitWorker{w: w, stop: stop}
}

func (e *exitWorker) Start(ctx context.Context) error {
	defer e.stop()
	return e.w.Start(ctx)
}
