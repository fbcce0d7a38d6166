package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
)

// Player runs one game for one connection.
type Player struct {
	conn       io.Writer
	in         LineReader
	sessionId  string
	subject    string
	world      *game.World
	cmdHandler *commands.Handler
}

// Id returns the player's session id.
func (p *Player) Id() string {
	return p.sessionId
}

// Play greets the player and runs turns until the game is over. It reports
// whether the game was won.
func (p *Player) Play(ctx context.Context) (bool, error) {
	p.welcome()

	for !p.world.Over() {
		line, err := Prompt(p.in, p.conn, "> ")
		if err != nil {
			return false, err
		}

		if line == "" {
			continue
		}

		// Mobs act once per command, before it runs.
		p.world.Tick(ctx)

		// Parse command and arguments
		parts := strings.Fields(line)
		cmdName := parts[0]
		args := parts[1:]

		err = p.cmdHandler.Exec(ctx, p.world, p.subject, cmdName, args...)
		if err != nil {
			var userErr *commands.UserError
			if !errors.As(err, &userErr) {
				// System error - log and disconnect
				return false, fmt.Errorf("command execution failed: %w", err)
			}
			if err := p.writeLine(userErr.Message); err != nil {
				return false, err
			}
		}
	}

	slog.InfoContext(ctx, "game over", "session", p.sessionId, "won", p.world.Won())
	return p.world.Won(), nil
}

func (p *Player) welcome() {
	sc := p.world.Scenario()

	lines := []string{
		"",
		fmt.Sprintf("Welcome to %s!", sc.Selector()),
		fmt.Sprintf("You are %s", p.world.Player().Name()),
	}
	if sc.Intro != "" {
		lines = append(lines, sc.Intro)
	}
	lines = append(lines,
		"Type 'help' if you need help.",
		"",
		p.world.Describe(p.world.Here()),
	)
	p.world.Narrate(strings.Join(lines, "\n"))
}

func (p *Player) writeLine(msg string) error {
	_, err := io.WriteString(p.conn, msg+"\n")
	return err
}
