package testkit

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/mf2/internal/ast"
)

// ConcurrentTraverse runs workers full traversals of the tree under
// root in parallel and verifies each observes the same node count. The
// tree carries no synchronization; running this under the race
// detector exercises the lock-free read-only traversal guarantee.
func ConcurrentTraverse(root ast.Node, workers int) error {
	if workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", workers)
	}
	counts := make([]int, workers)
	var g errgroup.Group
	for i := range counts {
		i := i
		g.Go(func() error {
			counts[i] = CountNodes(root)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i := 1; i < workers; i++ {
		if counts[i] != counts[0] {
			return fmt.Errorf("traversal %d saw %d nodes, traversal 0 saw %d", i, counts[i], counts[0])
		}
	}
	return nil
}
