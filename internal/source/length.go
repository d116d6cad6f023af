package source

import (
	"fmt"

	"fortio.org/safecast"
)

// LengthShort is a compact byte length for sub-token structure, e.g.
// the integral/fractional/exponent widths of a number literal. Keeping
// it at 16 bits keeps number nodes small; no single numeric component
// can realistically exceed it.
type LengthShort uint16

// NewLengthShort converts n to a LengthShort, reporting overflow.
func NewLengthShort(n int) (LengthShort, error) {
	v, err := safecast.Conv[uint16](n)
	if err != nil {
		return 0, fmt.Errorf("length overflow: %w", err)
	}
	return LengthShort(v), nil
}

// MustLengthShort is NewLengthShort for lengths known to fit.
func MustLengthShort(n int) LengthShort {
	v, err := NewLengthShort(n)
	if err != nil {
		panic(err)
	}
	return v
}

// LengthShortOf measures s in bytes.
func LengthShortOf(s string) (LengthShort, error) {
	return NewLengthShort(len(s))
}
