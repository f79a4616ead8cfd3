package graph

import (
	"fmt"

	"github.com/kinshiphq/kinship/internal/models"
)

// Step is one node on a found path. IncomingKind labels the relationship
// traversed from the previous step; it is empty on the first step.
type Step struct {
	ID           string
	IncomingKind models.RelationKind
}

// Path is the result of a shortest-path search. Found is false both for
// disconnected endpoints and for the trivial from==to case; the latter
// additionally sets Trivial and carries the single node.
type Path struct {
	Found   bool
	Trivial bool
	Steps   []Step
}

// frontier is one side of the bidirectional search.
type frontier struct {
	visited map[string]bool
	pred    map[string]string
	nodes   []string
}

func newFrontier(start string) *frontier {
	return &frontier{
		visited: map[string]bool{start: true},
		pred:    map[string]string{},
		nodes:   []string{start},
	}
}

// expand advances the frontier one BFS level. It returns the first node
// that is also present in other's visited set, or "" if the level
// completed without meeting. Expansion order follows the sorted
// adjacency, which makes tie-breaks between equal-length paths
// reproducible.
func (f *frontier) expand(adj *Adjacency, other *frontier) string {
	var next []string

	for _, id := range f.nodes {
		for _, n := range adj.Neighbors(id) {
			if f.visited[n.ID] {
				continue
			}

			f.visited[n.ID] = true
			f.pred[n.ID] = id
			next = append(next, n.ID)

			if other.visited[n.ID] {
				f.nodes = next
				return n.ID
			}
		}
	}

	f.nodes = next

	return ""
}

// trail walks the predecessor chain from node back to the frontier's
// start, returning start-first order.
func (f *frontier) trail(node string) []string {
	ids := []string{node}
	for {
		p, ok := f.pred[ids[len(ids)-1]]
		if !ok {
			break
		}

		ids = append(ids, p)
	}

	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}

	return ids
}

// FindPath runs a bidirectional BFS between two persons and returns the
// shortest labeled path. maxHops bounds the combined depth of the two
// searches; zero or negative means DefaultPathHops. Exhausting either
// frontier, or the hop ceiling, yields a no-connection result — a normal
// outcome, not an error.
func FindPath(adj *Adjacency, fromID, toID string, maxHops int) (*Path, error) {
	for _, id := range []string{fromID, toID} {
		if !adj.Contains(id) {
			return nil, fmt.Errorf("%w: %s", models.ErrPersonNotFound, id)
		}
	}

	// A person trivially "connected" to themselves is reported as no
	// meaningful relationship, not a found connection.
	if fromID == toID {
		return &Path{Trivial: true, Steps: []Step{{ID: fromID}}}, nil
	}

	if maxHops <= 0 {
		maxHops = DefaultPathHops
	}

	a := newFrontier(fromID)
	b := newFrontier(toID)

	meeting := ""

	for hops := 0; len(a.nodes) > 0 && len(b.nodes) > 0 && hops < maxHops; hops++ {
		// Expand the smaller frontier first; family graphs branch heavily
		// near marriages, so this materially cuts the explored volume.
		side, other := a, b
		if len(b.nodes) < len(a.nodes) {
			side, other = b, a
		}

		if meeting = side.expand(adj, other); meeting != "" {
			break
		}
	}

	if meeting == "" {
		return &Path{}, nil
	}

	ids := a.trail(meeting)
	back := b.trail(meeting) // toID ... meeting
	for i := len(back) - 2; i >= 0; i-- {
		ids = append(ids, back[i])
	}

	steps := make([]Step, len(ids))
	steps[0] = Step{ID: ids[0]}

	for i := 1; i < len(ids); i++ {
		steps[i] = Step{ID: ids[i], IncomingKind: adj.label(ids[i-1], ids[i])}
	}

	return &Path{Found: true, Steps: steps}, nil
}
