package api_test

import (
	"context"

	"github.com/kinshiphq/kinship/internal/models"
)

// mockKinshipRepo implements api.KinshipRepository for testing.
type mockKinshipRepo struct {
	discoverFn func(ctx context.Context, rootID string, maxDepth int, mode models.DepthMode, filter models.DiscoveryFilter) (*models.DiscoverResult, error)
	findPathFn func(ctx context.Context, fromID, toID string) (*models.PathResult, error)
}

func (m *mockKinshipRepo) Discover(ctx context.Context, rootID string, maxDepth int, mode models.DepthMode, filter models.DiscoveryFilter) (*models.DiscoverResult, error) {
	return m.discoverFn(ctx, rootID, maxDepth, mode, filter)
}

func (m *mockKinshipRepo) FindPath(ctx context.Context, fromID, toID string) (*models.PathResult, error) {
	return m.findPathFn(ctx, fromID, toID)
}

// mockLevelStreamer implements api.LevelStreamer for testing.
type mockLevelStreamer struct {
	levels map[int][]string
	err    error
}

func (m *mockLevelStreamer) DiscoverLevels(ctx context.Context, rootID string, maxDepth int, onLevel func(depth int, ids []string) error) error {
	if m.err != nil {
		return m.err
	}

	for depth := 1; depth <= maxDepth; depth++ {
		ids, ok := m.levels[depth]
		if !ok {
			break
		}

		if err := onLevel(depth, ids); err != nil {
			return err
		}
	}

	return nil
}
