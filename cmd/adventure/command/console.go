package command

import (
	"context"
	"io"
	"os"

	"github.com/pixil98/go-adventure/internal/listener"
)

// console plays one game on the process's own terminal.
type console struct {
	sr  listener.SessionRunner
	in  io.Reader
	out io.Writer
}

func newConsole(sr listener.SessionRunner) *console {
	return &console{sr: sr, in: os.Stdin, out: os.Stdout}
}

func (c *console) Start(ctx context.Context) error {
	return c.sr.RunSession(ctx, struct {
		io.Reader
		io.Writer
	}{c.in, c.out})
}
