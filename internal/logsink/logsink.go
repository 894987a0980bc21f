package logsink

import (
	"errors"
	"io"
)

// MultiWriteCloser fans every write out to all sinks. It is used to
// mirror fixture log lines to a file next to the live stream.
type MultiWriteCloser struct {
	sinks []io.WriteCloser
}

func New(sinks ...io.WriteCloser) *MultiWriteCloser {
	return &MultiWriteCloser{sinks: sinks}
}

// Add appends another sink to receive future writes.
func (m *MultiWriteCloser) Add(sink io.WriteCloser) {
	m.sinks = append(m.sinks, sink)
}

func (m *MultiWriteCloser) Write(p []byte) (n int, err error) {
	for _, w := range m.sinks {
		n, err = w.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, errors.New("short write")
		}
	}
	return len(p), nil
}

// Close closes every sink and returns the first error seen. All sinks
// are closed even when an early one fails.
func (m *MultiWriteCloser) Close() error {
	var firstErr error
	for _, w := range m.sinks {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NopCloser adapts a plain writer, typically os.Stdout, into a sink
// whose Close is a no-op.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}
