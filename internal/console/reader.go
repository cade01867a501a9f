package console

import (
	"bufio"
	"context"
	"io"
	"math"
)

// LineReader reads input lines in a goroutine so a blocked read can be
// abandoned when the context is cancelled.
type LineReader struct {
	lines chan string
	err   error
	done  chan struct{}
}

// NewLineReader starts reading lines from r. Empty lines are delivered;
// they end multi-line input.
func NewLineReader(r io.Reader) *LineReader {
	lr := &LineReader{
		lines: make(chan string),
		done:  make(chan struct{}),
	}
	go lr.readLoop(r)
	return lr
}

func (lr *LineReader) readLoop(r io.Reader) {
	defer close(lr.lines)
	scanner := bufio.NewScanner(r)
	// Detail lines have no length limit; they are chunked after reading.
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for scanner.Scan() {
		select {
		case lr.lines <- scanner.Text():
		case <-lr.done:
			return
		}
	}
	lr.err = scanner.Err()
}

// ReadLine blocks until a line arrives, input ends (io.EOF) or ctx is done.
func (lr *LineReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if !ok {
			if lr.err != nil {
				return "", lr.err
			}
			return "", io.EOF
		}
		return line, nil
	}
}

// Stop lets the reading goroutine exit at its next line.
func (lr *LineReader) Stop() {
	select {
	case <-lr.done:
		// already stopped
	default:
		close(lr.done)
	}
}
