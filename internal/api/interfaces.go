package api

import (
	"context"

	"github.com/kinshiphq/kinship/internal/models"
)

// KinshipRepository defines the query operations used by KinshipHandler.
type KinshipRepository interface {
	Discover(ctx context.Context, rootID string, maxDepth int, mode models.DepthMode, filter models.DiscoveryFilter) (*models.DiscoverResult, error)
	FindPath(ctx context.Context, fromID, toID string) (*models.PathResult, error)
}

// LevelStreamer streams raw BFS levels for the watch endpoint.
type LevelStreamer interface {
	DiscoverLevels(ctx context.Context, rootID string, maxDepth int, onLevel func(depth int, ids []string) error) error
}
