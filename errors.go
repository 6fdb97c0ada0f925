package pack

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrShortRead means the source ran out of data before a value was
	// complete.
	ErrShortRead = errors.New("short read")
	// ErrRead means the source failed for a reason other than running out
	// of data.
	ErrRead = errors.New("read failed")
	// ErrWrite means the sink rejected a write or accepted fewer bytes than
	// it was given.
	ErrWrite = errors.New("write failed")
	// ErrInvalid means the bytes read do not encode a value of the target
	// type.
	ErrInvalid = errors.New("invalid encoding")
	// ErrLength means an array value does not have the length of its codec.
	ErrLength = errors.New("wrong array length")
	// ErrTrailingData is returned by Unmarshal when data is longer than the
	// value it decodes.
	ErrTrailingData = errors.New("trailing data")
)

// Error is the failure returned by every codec in this package.
// errors.Is matches it against its Kind as well as the underlying
// channel error, so both errors.Is(err, ErrShortRead) and
// errors.Is(err, io.ErrUnexpectedEOF) hold for a truncated source.
type Error struct {
	Op   string // "pack" or "unpack"
	Type string // codec name, e.g. "u32"
	Kind error
	Err  error
}

func (err *Error) Error() string {
	if err.Err == nil {
		return fmt.Sprintf("%v %v: %v", err.Op, err.Type, err.Kind)
	}
	return fmt.Sprintf("%v %v: %v: %v", err.Op, err.Type, err.Kind, err.Err)
}

func (err *Error) Unwrap() []error {
	if err.Err == nil {
		return []error{err.Kind}
	}
	return []error{err.Kind, err.Err}
}

func readError(typ string, err error) error {
	kind := ErrRead
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		kind = ErrShortRead
	}
	return &Error{Op: "unpack", Type: typ, Kind: kind, Err: err}
}

func writeError(typ string, err error) error {
	return &Error{Op: "pack", Type: typ, Kind: ErrWrite, Err: err}
}

func invalidError(typ string, format string, args ...any) error {
	return &Error{Op: "unpack", Type: typ, Kind: ErrInvalid, Err: fmt.Errorf(format, args...)}
}

// truncated marks a source that ended cleanly before a later part of a
// composite value as io.ErrUnexpectedEOF, so that io.EOF is only ever
// reported at a value boundary.
func truncated(err error) error {
	var perr *Error
	if errors.As(err, &perr) && (perr.Op == "unpack") && (perr.Err == io.EOF) {
		perr.Err = io.ErrUnexpectedEOF
	}
	return err
}

// readFull reads exactly len(buf) bytes from r.
func readFull(r io.Reader, typ string, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	if err != nil {
		return readError(typ, err)
	}
	return nil
}

// writeFull writes all of buf to w in a single call.
func writeFull(w io.Writer, typ string, buf []byte) error {
	n, err := w.Write(buf)
	if (err == nil) && (n < len(buf)) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return writeError(typ, err)
	}
	return nil
}

func nameOf(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", v)
}
