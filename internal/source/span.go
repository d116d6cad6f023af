package source

import (
	"fmt"
)

// Span is a half-open byte range over the message source buffer:
// Start is inclusive, End is exclusive. A tree borrows from exactly
// one buffer, so spans carry no file identity.
type Span struct {
	Start Location
	End   Location
}

// NewSpan builds a span from two locations.
func NewSpan(start, end Location) Span {
	return Span{Start: start, End: end}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return uint32(s.End - s.Start)
}

// IsDummy reports whether the span points at no real source location.
func (s Span) IsDummy() bool {
	return s.Start.IsDummy()
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Contains reports whether other lies fully within s.
func (s Span) Contains(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// Cover widens s to include other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}
