package player

import (
	"bufio"
	"context"
	"io"
)

// lineReader reads lines from a connection on its own goroutine so a
// blocked read never keeps a session alive past its context.
type lineReader struct {
	ctx   context.Context
	lines chan string
	errc  chan error
}

func newLineReader(ctx context.Context, r io.Reader) *lineReader {
	l := &lineReader{
		ctx:   ctx,
		lines: make(chan string),
		errc:  make(chan error, 1),
	}

	go func() {
		defer close(l.lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case l.lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		l.errc <- scanner.Err()
	}()

	return l
}

func (l *lineReader) ReadLine() (string, error) {
	select {
	case <-l.ctx.Done():
		return "", l.ctx.Err()

	case line, ok := <-l.lines:
		if ok {
			return line, nil
		}
		select {
		case err := <-l.errc:
			if err != nil {
				return "", err
			}
		default:
		}
		return "", io.EOF
	}
}
