// Package domain defines the canonical interfaces shared across layers.
// The engine consumes read-only person and edge data through these;
// consumers should depend on them rather than re-declaring equivalents.
package domain

import (
	"context"

	"github.com/kinshiphq/kinship/internal/models"
)

// EdgeSource loads relationship edges for one query's graph scope.
type EdgeSource interface {
	// LoadEdgesNear returns every edge within maxDepth hops of personID,
	// bounding how much of the graph is pulled into memory.
	LoadEdgesNear(ctx context.Context, personID string, maxDepth int) ([]models.RelationshipEdge, error)

	// LoadAllEdges returns the full edge set, used by path queries whose
	// reach is not depth-bounded up front.
	LoadAllEdges(ctx context.Context) ([]models.RelationshipEdge, error)

	// LookupGenders returns the recorded gender for each given person
	// that exists; absent persons are simply missing from the map.
	LookupGenders(ctx context.Context, personIDs []string) (map[string]models.Gender, error)
}

// PersonDirectory resolves display attributes for result enrichment.
type PersonDirectory interface {
	// LookupPerson returns the person record or models.ErrPersonNotFound.
	LookupPerson(ctx context.Context, personID string) (*models.Person, error)

	// LookupAddress returns the person's address record with its
	// location hierarchy, or models.ErrAddressNotFound.
	LookupAddress(ctx context.Context, personID string) (*models.Address, error)
}

// KinshipService answers the two graph queries.
type KinshipService interface {
	Discover(ctx context.Context, rootID string, maxDepth int, mode models.DepthMode, filter models.DiscoveryFilter) (*models.DiscoverResult, error)
	FindPath(ctx context.Context, fromID, toID string) (*models.PathResult, error)
}
