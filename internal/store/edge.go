package store

import (
	"context"
	"fmt"

	"github.com/kinshiphq/kinship/internal/models"
)

// Edge loading limits.
const (
	frontierEdgeLimit = 5000   // max edges per frontier expansion query
	allEdgesLimit     = 200000 // hard cap on the full edge set
)

// EdgeStore loads relationship edges for one query's graph scope.
type EdgeStore struct {
	Base
}

// NewEdgeStore creates an EdgeStore with the given shared base.
func NewEdgeStore(base Base) *EdgeStore {
	return &EdgeStore{Base: base}
}

// LoadEdgesNear returns every relationship edge within maxDepth hops of
// personID. The frontier is expanded one hop per query, both directions
// at once, so the amount pulled into memory is bounded by the
// neighborhood size rather than the full graph.
func (s *EdgeStore) LoadEdgesNear(ctx context.Context, personID string, maxDepth int) ([]models.RelationshipEdge, error) {
	if maxDepth < 1 {
		maxDepth = 1
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	neighborSQL := `SELECT DISTINCT ` + edgeColumns + ` FROM relationships
		WHERE source_id = ANY($1) OR target_id = ANY($1)
		ORDER BY source_id, target_id, kind
		LIMIT ` + fmt.Sprintf("%d", frontierEdgeLimit)

	seen := map[string]bool{personID: true}
	frontier := []string{personID}
	edgeKeys := make(map[[3]string]bool)
	edges := make([]models.RelationshipEdge, 0, 64)

	for hop := 0; hop < maxDepth && len(frontier) > 0; hop++ {
		rows, err := s.Pool.Query(ctx, neighborSQL, frontier)
		if err != nil {
			return nil, fmt.Errorf("querying edge frontier at hop %d: %w", hop, err)
		}

		var next []string

		for rows.Next() {
			e, err := scanEdge(rows.Scan)
			if err != nil {
				rows.Close()
				return nil, fmt.Errorf("scanning relationship edge: %w", err)
			}

			key := [3]string{e.Source, e.Target, string(e.Kind)}
			if !edgeKeys[key] {
				edgeKeys[key] = true
				edges = append(edges, *e)
			}

			for _, id := range []string{e.Source, e.Target} {
				if !seen[id] {
					seen[id] = true
					next = append(next, id)
				}
			}
		}

		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, fmt.Errorf("iterating edge frontier: %w", err)
		}

		rows.Close()

		frontier = next
	}

	return edges, nil
}

// LoadAllEdges returns the full relationship edge set, used by path
// queries whose reach is not depth-bounded up front.
func (s *EdgeStore) LoadAllEdges(ctx context.Context) ([]models.RelationshipEdge, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	sql := `SELECT ` + edgeColumns + ` FROM relationships
		ORDER BY source_id, target_id, kind
		LIMIT ` + fmt.Sprintf("%d", allEdgesLimit)

	rows, err := s.Pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("querying all edges: %w", err)
	}
	defer rows.Close()

	edges := make([]models.RelationshipEdge, 0, 256)

	for rows.Next() {
		e, err := scanEdge(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning relationship edge: %w", err)
		}

		edges = append(edges, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating all edges: %w", err)
	}

	return edges, nil
}

// LookupGenders returns the recorded gender for each given person that
// exists. Absent persons are simply missing from the map; the caller
// falls back to generic relationship labels for them.
func (s *EdgeStore) LookupGenders(ctx context.Context, personIDs []string) (map[string]models.Gender, error) {
	if len(personIDs) == 0 {
		return map[string]models.Gender{}, nil
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.Pool.Query(ctx, `SELECT id, gender FROM persons WHERE id = ANY($1)`, personIDs)
	if err != nil {
		return nil, fmt.Errorf("querying genders: %w", err)
	}
	defer rows.Close()

	genders := make(map[string]models.Gender, len(personIDs))

	for rows.Next() {
		var id, gender string
		if err := rows.Scan(&id, &gender); err != nil {
			return nil, fmt.Errorf("scanning gender: %w", err)
		}

		genders[id] = models.ParseGender(gender)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating genders: %w", err)
	}

	return genders, nil
}
