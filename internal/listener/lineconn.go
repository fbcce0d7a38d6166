package listener

import (
	"bytes"
	"io"
)

// lineConn translates between network line endings and the "\n" the game
// reads and writes. Telnet clients send "\r\n", SSH clients with a PTY send a
// bare "\r", and a "\r\n" pair may be split across two reads.
type lineConn struct {
	rw    io.ReadWriter
	sawCR bool
}

func newCRLFReadWriter(rw io.ReadWriter) io.ReadWriter {
	return &lineConn{rw: rw}
}

func (c *lineConn) Read(p []byte) (int, error) {
	for {
		n, err := c.rw.Read(p)
		out := p[:0]
		for _, b := range p[:n] {
			switch {
			case b == '\r':
				out = append(out, '\n')
				c.sawCR = true
			case b == '\n' && c.sawCR:
				c.sawCR = false
			default:
				out = append(out, b)
				c.sawCR = false
			}
		}
		// A read holding only the tail of a "\r\n" pair yields nothing;
		// read again rather than report a zero length read.
		if len(out) == 0 && n > 0 && err == nil {
			continue
		}
		return len(out), err
	}
}

func (c *lineConn) Write(p []byte) (int, error) {
	_, err := c.rw.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n")))
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
