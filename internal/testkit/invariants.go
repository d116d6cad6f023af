package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/vovakirdan/mf2/internal/ast"
	"github.com/vovakirdan/mf2/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on the
// tree under root against the source it was parsed from:
// 1) every span satisfies Start <= End and ends within the source
// 2) every child span lies within its parent's span
// 3) siblings appear in non-decreasing source order
// Dummy spans (an empty Pattern) are exempt from bounds and
// containment; they carry no location at all.
func CheckSpanInvariants(root ast.Node, src string) error {
	if root == nil {
		return fmt.Errorf("nil root")
	}
	lenSrc, err := safecast.Conv[uint32](len(src))
	if err != nil {
		return fmt.Errorf("len source overflow: %w", err)
	}
	return checkNode(root, lenSrc)
}

func checkNode(n ast.Node, lenSrc uint32) error {
	sp := n.Span()
	if !sp.IsDummy() {
		if sp.End < sp.Start {
			return fmt.Errorf("%T span inverted: %s", n, sp)
		}
		if uint32(sp.End) > lenSrc {
			return fmt.Errorf("%T span end beyond source: %s > %d", n, sp, lenSrc)
		}
	}

	var prev source.Span
	havePrev := false
	for _, kid := range Children(n) {
		ksp := kid.Span()
		if !sp.IsDummy() && !ksp.IsDummy() {
			if !sp.Contains(ksp) {
				return fmt.Errorf("child %T span %s outside parent %T span %s", kid, ksp, n, sp)
			}
			if havePrev && ksp.Start < prev.Start {
				return fmt.Errorf("child %T span %s out of order after %s in %T", kid, ksp, prev, n)
			}
			prev = ksp
			havePrev = true
		}
		if err := checkNode(kid, lenSrc); err != nil {
			return err
		}
	}
	return nil
}
