// Package ast defines the syntax tree for MessageFormat 2 messages.
//
// The parser constructs nodes bottom-up over one source string; a
// finished tree is immutable and may be traversed concurrently without
// locking. Every textual field is a Go substring of that one source
// string, so the tree copies nothing — callers must not rebuild or swap
// the source out from under a live tree if they compare slices by
// offset arithmetic.
//
// Closed unions of the grammar (PatternPart, Expression, Annotation and
// so on) are sealed interfaces with package-private marker methods.
// They carry no state of their own: holding a Text behind the
// PatternPart interface is the same value as holding it directly, so
// union membership never produces its own visitor event.
package ast
