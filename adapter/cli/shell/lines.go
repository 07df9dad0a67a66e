package shell

import (
	"bufio"
	"context"
	"io"
)

// lineReader delivers input lines on a channel so a blocked read never
// prevents the session from observing cancellation.
type lineReader struct {
	lines chan string
	done  chan struct{}
	err   error
}

func newLineReader(in io.Reader) *lineReader {
	r := &lineReader{
		lines: make(chan string),
		done:  make(chan struct{}),
	}
	go r.run(in)
	return r
}

func (r *lineReader) run(in io.Reader) {
	defer close(r.lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case r.lines <- scanner.Text():
		case <-r.done:
			return
		}
	}
	r.err = scanner.Err()
}

// next returns the next line. It returns io.EOF at the end of input and
// ctx.Err() once ctx is cancelled.
func (r *lineReader) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-r.lines:
		if !ok {
			if r.err != nil {
				return "", r.err
			}
			return "", io.EOF
		}
		return line, nil
	}
}

// close stops the reader goroutine once it has a line to deliver.
func (r *lineReader) close() {
	select {
	case <-r.done:
	default:
		close(r.done)
	}
}
