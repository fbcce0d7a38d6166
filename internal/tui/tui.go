package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const maxHistory = 50

// SessionRunner plays a game over a connection until it ends.
type SessionRunner interface {
	RunSession(ctx context.Context, rw io.ReadWriter) error
}

// Frontend plays one session in a full screen terminal UI: a scrolling
// output pane above a single input line.
type Frontend struct {
	sr     SessionRunner
	app    *tview.Application
	output *tview.TextView
	input  *tview.InputField

	pr      *io.PipeReader
	pw      *io.PipeWriter
	pending chan string

	history []string
	cursor  int
}

func New(sr SessionRunner, title string) *Frontend {
	f := &Frontend{
		sr:      sr,
		app:     tview.NewApplication(),
		output:  tview.NewTextView(),
		input:   tview.NewInputField(),
		pending: make(chan string, 64),
	}
	f.pr, f.pw = io.Pipe()

	f.output.
		SetDynamicColors(false).
		SetScrollable(true).
		SetWordWrap(true).
		SetBorder(true).
		SetTitle(fmt.Sprintf(" %s ", title))

	f.input.
		SetLabel("> ").
		SetFieldBackgroundColor(tcell.ColorDefault).
		SetDoneFunc(func(key tcell.Key) {
			if key != tcell.KeyEnter {
				return
			}
			f.submit(f.input.GetText())
			f.input.SetText("")
		}).
		SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
			switch event.Key() {
			case tcell.KeyUp:
				f.input.SetText(f.recall(-1))
				return nil
			case tcell.KeyDown:
				f.input.SetText(f.recall(1))
				return nil
			}
			return event
		})

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(f.output, 0, 1, false).
		AddItem(f.input, 1, 0, true)
	f.app.SetRoot(layout, true).SetFocus(f.input)

	go f.feed()

	return f
}

// Start runs the UI and the session until either ends or ctx is done.
func (f *Frontend) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	f.output.SetChangedFunc(func() {
		f.app.Draw()
	})

	go func() {
		err := f.sr.RunSession(ctx, f)
		if err != nil {
			slog.ErrorContext(ctx, "tui session", "error", err)
		}
		f.app.Stop()
	}()

	go func() {
		<-ctx.Done()
		f.app.Stop()
	}()

	err := f.app.Run()
	close(f.pending)
	_ = f.pw.Close()
	if err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}

func (f *Frontend) Read(p []byte) (int, error) {
	return f.pr.Read(p)
}

// Write prints game output, skipping the session's own "> " prompt since
// the input line already shows one.
func (f *Frontend) Write(p []byte) (int, error) {
	if string(p) == "> " {
		return len(p), nil
	}
	n, err := f.output.Write(p)
	f.output.ScrollToEnd()
	return n, err
}

// submit echoes line and hands it to the session.
func (f *Frontend) submit(line string) {
	if line != "" {
		f.history = append(f.history, line)
		if len(f.history) > maxHistory {
			f.history = f.history[1:]
		}
	}
	f.cursor = len(f.history)

	_, _ = fmt.Fprintf(f.output, "> %s\n", line)
	f.pending <- line
}

// recall moves through input history. Moving past the newest entry yields
// an empty line.
func (f *Frontend) recall(delta int) string {
	f.cursor = max(0, min(len(f.history), f.cursor+delta))
	if f.cursor == len(f.history) {
		return ""
	}
	return f.history[f.cursor]
}

// feed writes submitted lines to the session in order without blocking the
// UI goroutine.
func (f *Frontend) feed() {
	for line := range f.pending {
		if _, err := io.WriteString(f.pw, line+"\n"); err != nil {
			return
		}
	}
}
