// Package graph implements the family relationship graph engine: edge
// normalization into a symmetric adjacency view, bounded breadth-first
// discovery, and bidirectional shortest-path search.
//
// The engine is a pure in-memory computation. Each query builds its own
// ephemeral adjacency view and never touches shared mutable state, so
// concurrent queries need no coordination.
package graph

import (
	"fmt"
	"sort"

	"github.com/kinshiphq/kinship/internal/models"
)

// Direction marks whether an adjacency entry came from the stored edge
// row or from its derived inverse.
type Direction string

// Entry directions.
const (
	DirForward  Direction = "forward"
	DirBackward Direction = "backward"
)

// Neighbor is one adjacency entry: a directly connected person and the
// label of that person relative to the list owner.
type Neighbor struct {
	ID        string
	Kind      models.RelationKind
	Direction Direction
}

// Adjacency is the symmetric per-query view of the relationship graph.
// Neighbor lists are sorted by (id, kind) so that repeated queries over
// unchanged data expand in identical order; this determinism is a
// correctness requirement for reproducible results, not a style choice.
type Adjacency struct {
	entries map[string][]Neighbor
}

// Build normalizes raw directed edges into a symmetric adjacency view.
// genders supplies each person's gender for picking the inverse labels;
// missing entries fall back to the generic parent/child labels.
//
// For every stored edge (u, v, kind), v appears under u with the stored
// kind and u appears under v with the inverse kind, regardless of
// whether the storage layer materialized the inverse row. Duplicates of
// the same (owner, neighbor, kind) collapse, so a stored edge and its
// materialized inverse row yield one entry per side; distinct kinds
// between the same pair are all retained as separate facts.
func Build(edges []models.RelationshipEdge, genders map[string]models.Gender) (*Adjacency, error) {
	a := &Adjacency{entries: make(map[string][]Neighbor, len(edges)*2)}
	seen := make(map[[3]string]bool, len(edges)*2)

	add := func(owner string, n Neighbor) {
		key := [3]string{owner, n.ID, string(n.Kind)}
		if seen[key] {
			return
		}

		seen[key] = true
		a.entries[owner] = append(a.entries[owner], n)
	}

	for _, e := range edges {
		if !e.Kind.Valid() {
			return nil, fmt.Errorf("%w: kind %q on edge %s -> %s", models.ErrMalformedEdge, string(e.Kind), e.Source, e.Target)
		}

		inverse, err := e.Kind.Inverse(genders[e.Source])
		if err != nil {
			return nil, err
		}

		add(e.Source, Neighbor{ID: e.Target, Kind: e.Kind, Direction: DirForward})
		add(e.Target, Neighbor{ID: e.Source, Kind: inverse, Direction: DirBackward})
	}

	for id := range a.entries {
		ns := a.entries[id]
		sort.Slice(ns, func(i, j int) bool {
			if ns[i].ID != ns[j].ID {
				return ns[i].ID < ns[j].ID
			}

			return ns[i].Kind < ns[j].Kind
		})
	}

	return a, nil
}

// Contains reports whether the person appears in the view.
func (a *Adjacency) Contains(id string) bool {
	_, ok := a.entries[id]
	return ok
}

// Neighbors returns the sorted adjacency entries for a person.
func (a *Adjacency) Neighbors(id string) []Neighbor {
	return a.entries[id]
}

// Len returns the number of persons in the view.
func (a *Adjacency) Len() int {
	return len(a.entries)
}

// label returns the relationship kind of `to` as seen from `from`: the
// first matching entry under the deterministic ordering. Used during
// path reconstruction.
func (a *Adjacency) label(from, to string) models.RelationKind {
	for _, n := range a.entries[from] {
		if n.ID == to {
			return n.Kind
		}
	}

	return ""
}
