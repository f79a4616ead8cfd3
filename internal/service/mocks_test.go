package service

import (
	"context"

	"github.com/kinshiphq/kinship/internal/models"
)

// mockEdgeSource returns configured edge sets and genders.
type mockEdgeSource struct {
	loadEdgesNear func(ctx context.Context, personID string, maxDepth int) ([]models.RelationshipEdge, error)
	loadAllEdges  func(ctx context.Context) ([]models.RelationshipEdge, error)
	lookupGenders func(ctx context.Context, personIDs []string) (map[string]models.Gender, error)
}

func (m *mockEdgeSource) LoadEdgesNear(ctx context.Context, personID string, maxDepth int) ([]models.RelationshipEdge, error) {
	return m.loadEdgesNear(ctx, personID, maxDepth)
}

func (m *mockEdgeSource) LoadAllEdges(ctx context.Context) ([]models.RelationshipEdge, error) {
	return m.loadAllEdges(ctx)
}

func (m *mockEdgeSource) LookupGenders(ctx context.Context, personIDs []string) (map[string]models.Gender, error) {
	return m.lookupGenders(ctx, personIDs)
}

// mockDirectory serves person and address records from maps.
type mockDirectory struct {
	persons   map[string]*models.Person
	addresses map[string]*models.Address
}

func (m *mockDirectory) LookupPerson(_ context.Context, personID string) (*models.Person, error) {
	p, ok := m.persons[personID]
	if !ok {
		return nil, models.ErrPersonNotFound
	}

	return p, nil
}

func (m *mockDirectory) LookupAddress(_ context.Context, personID string) (*models.Address, error) {
	a, ok := m.addresses[personID]
	if !ok {
		return nil, models.ErrAddressNotFound
	}

	return a, nil
}

// fixedEdges builds a mockEdgeSource serving one static edge set with
// genders taken from the directory.
func fixedEdges(edges []models.RelationshipEdge, dir *mockDirectory) *mockEdgeSource {
	return &mockEdgeSource{
		loadEdgesNear: func(context.Context, string, int) ([]models.RelationshipEdge, error) {
			return edges, nil
		},
		loadAllEdges: func(context.Context) ([]models.RelationshipEdge, error) {
			return edges, nil
		},
		lookupGenders: func(_ context.Context, ids []string) (map[string]models.Gender, error) {
			genders := make(map[string]models.Gender, len(ids))
			for _, id := range ids {
				if p, ok := dir.persons[id]; ok {
					genders[id] = p.Gender
				}
			}

			return genders, nil
		},
	}
}
