package graph

import (
	"fmt"

	"github.com/kinshiphq/kinship/internal/models"
)

// Default traversal ceilings, used when the caller passes none.
const (
	DefaultDepthCeiling = 20 // caps discovery depth
	DefaultPathHops     = 25 // caps combined bidirectional search depth
)

// DiscoverOptions bounds a discovery query. Ceiling is the system-wide
// depth limit; requests above it are clamped rather than rejected to
// keep the API forgiving.
type DiscoverOptions struct {
	MaxDepth int
	Mode     models.DepthMode
	Ceiling  int
}

func (o DiscoverOptions) clampedDepth() int {
	ceiling := o.Ceiling
	if ceiling <= 0 {
		ceiling = DefaultDepthCeiling
	}

	depth := o.MaxDepth
	if depth < 1 {
		depth = 1
	}

	if depth > ceiling {
		depth = ceiling
	}

	return depth
}

// Discover runs a bounded BFS from rootID and returns every reachable
// person with the minimal hop count at which they were first reached,
// filtered by the depth mode. The root itself is never included.
func Discover(adj *Adjacency, rootID string, opts DiscoverOptions) (map[string]int, error) {
	depths := make(map[string]int)

	err := DiscoverLevels(adj, rootID, opts, func(depth int, ids []string) error {
		for _, id := range ids {
			depths[id] = depth
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if opts.Mode == models.DepthOnlyAt {
		target := opts.clampedDepth()
		for id, d := range depths {
			if d != target {
				delete(depths, id)
			}
		}
	}

	return depths, nil
}

// DiscoverLevels runs the same bounded BFS but hands each completed
// level (depth 1 and deeper, root excluded) to onLevel as it finishes,
// in deterministic order. Returning an error from onLevel aborts the
// traversal. Used for progressive streaming of large neighborhoods;
// depth-mode filtering does not apply here.
func DiscoverLevels(adj *Adjacency, rootID string, opts DiscoverOptions, onLevel func(depth int, ids []string) error) error {
	if !adj.Contains(rootID) {
		return fmt.Errorf("%w: %s", models.ErrPersonNotFound, rootID)
	}

	switch opts.Mode {
	case "", models.DepthUpTo, models.DepthOnlyAt:
	default:
		return fmt.Errorf("%w: %q", models.ErrInvalidDepthMode, string(opts.Mode))
	}

	maxDepth := opts.clampedDepth()

	// The visited map doubles as the cycle guard: a person is marked on
	// first discovery and never revisited, so marriage cycles terminate
	// and each recorded depth is minimal by BFS level order.
	visited := map[string]bool{rootID: true}
	frontier := []string{rootID}

	for depth := 1; depth <= maxDepth && len(frontier) > 0; depth++ {
		var next []string

		for _, id := range frontier {
			for _, n := range adj.Neighbors(id) {
				if !visited[n.ID] {
					visited[n.ID] = true
					next = append(next, n.ID)
				}
			}
		}

		if len(next) > 0 {
			if err := onLevel(depth, next); err != nil {
				return err
			}
		}

		frontier = next
	}

	return nil
}
