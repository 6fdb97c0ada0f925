package pack

import (
	"bytes"
	"errors"
)

var errBoom = errors.New("boom")

// failingReader hands out data and then fails with err.
type failingReader struct {
	data  []byte
	err   error
	reads int
}

func (r *failingReader) Read(p []byte) (int, error) {
	r.reads++
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

// byteReader returns at most one byte per Read.
type byteReader struct {
	data []byte
}

func (r *byteReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, errors.New("unexpected read past end")
	}
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = r.data[0]
	r.data = r.data[1:]
	return 1, nil
}

// failingWriter accepts up to limit bytes and rejects any write that
// would exceed it.
type failingWriter struct {
	buf    bytes.Buffer
	limit  int
	writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.buf.Len()+len(p) > w.limit {
		return 0, errBoom
	}
	return w.buf.Write(p)
}

// shortWriter claims to write one byte less than it was given.
type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return len(p) - 1, nil
}
