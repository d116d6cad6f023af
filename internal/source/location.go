package source

import "unicode/utf8"

// Location is a byte offset into the message source buffer.
// The parser assigns locations while consuming the buffer; every
// derived span end is computed by advancing a location past the
// text that was consumed, so nodes never store redundant offsets.
type Location uint32

// DummyLocation marks a position that does not exist in the source.
// It is used for both ends of degenerate spans, e.g. a Pattern with
// zero parts.
const DummyLocation Location = ^Location(0)

// IsDummy reports whether the location is the DummyLocation sentinel.
func (l Location) IsDummy() bool {
	return l == DummyLocation
}

// AdvanceRune returns the location immediately past r.
// An invalid rune advances by the width of utf8.RuneError, matching
// what an encoder would have written.
func (l Location) AdvanceRune(r rune) Location {
	n := utf8.RuneLen(r)
	if n < 0 {
		n = utf8.RuneLen(utf8.RuneError)
	}
	return l + Location(n)
}

// AdvanceString returns the location immediately past s.
func (l Location) AdvanceString(s string) Location {
	return l + Location(len(s))
}

// Advance returns the location n bytes forward.
func (l Location) Advance(n LengthShort) Location {
	return l + Location(n)
}

// Min returns the smaller of l and other.
func (l Location) Min(other Location) Location {
	if other < l {
		return other
	}
	return l
}

// Max returns the larger of l and other.
func (l Location) Max(other Location) Location {
	if other > l {
		return other
	}
	return l
}
