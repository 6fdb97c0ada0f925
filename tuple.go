package pack

import (
	"fmt"
	"io"
	"strings"
)

//go:generate go run ./cmd/packgen --max 12 --out tuple_gen.go

// Unit is the codec for the empty tuple. It has zero width and neither
// reads nor writes.
var Unit Codec[struct{}] = unitCodec{}

type unitCodec struct{}

func (unitCodec) String() string { return "()" }

func (unitCodec) Size() int { return 0 }

func (unitCodec) Pack(io.Writer, Order, struct{}) error { return nil }

func (unitCodec) Unpack(io.Reader, Order) (struct{}, error) { return struct{}{}, nil }

func checkFields(codecs ...any) {
	for i, c := range codecs {
		if c == nil {
			panic(fmt.Sprintf("pack: nil codec for tuple field V%v", i+1))
		}
	}
}

func tupleName(codecs ...any) string {
	names := make([]string, 0, len(codecs))
	for _, c := range codecs {
		names = append(names, nameOf(c))
	}
	return "(" + strings.Join(names, ", ") + ")"
}

// fieldError prefixes err with the name of the tuple field i (1-based).
func fieldError(i int, err error) error {
	if i > 1 {
		err = truncated(err)
	}
	return fmt.Errorf("V%v: %w", i, err)
}
