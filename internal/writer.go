package internal

import (
	"bytes"
	"io"
)

// FlushingWriter calls Flush for every complete line written to it. Line
// endings may be either LF or CRLF, and blank lines are dropped.
type FlushingWriter struct {
	Flush func(msg string)

	buf    bytes.Buffer
	closed bool
}

func (w *FlushingWriter) Write(data []byte) (int, error) {
	if w.closed {
		return 0, io.ErrClosedPipe
	}

	for _, b := range data {
		if b != '\n' {
			w.buf.WriteByte(b)
		} else {
			w.flush()
		}
	}

	return len(data), nil
}

func (w *FlushingWriter) flush() {
	line := bytes.TrimSuffix(w.buf.Bytes(), []byte{'\r'})
	if len(line) > 0 {
		w.Flush(string(line))
	}
	w.buf.Reset()
}

func (w *FlushingWriter) Close() error {
	if w.buf.Len() != 0 {
		w.flush()
	}
	w.closed = true
	return nil
}
