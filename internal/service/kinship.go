// Package service provides the query orchestration between the API
// layer, the data stores, and the pure graph engine.
package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/kinshiphq/kinship/internal/domain"
	"github.com/kinshiphq/kinship/internal/graph"
	"github.com/kinshiphq/kinship/internal/models"
)

// EdgeSource is the edge-loading interface KinshipService depends on.
// It reuses domain.EdgeSource since the method sets are identical.
type EdgeSource = domain.EdgeSource

// PersonDirectory is the enrichment interface KinshipService depends on.
type PersonDirectory = domain.PersonDirectory

// Compile-time check: *KinshipService must satisfy domain.KinshipService.
var _ domain.KinshipService = (*KinshipService)(nil)

// Limits carries the configured traversal and result bounds. They are
// passed in explicitly so the engine stays a pure function of its
// inputs rather than reading ambient global state.
type Limits struct {
	DepthCeiling  int // max discovery depth; requests above are clamped
	PathHops      int // combined bidirectional search depth cap
	ResultCap     int // max relatives returned per discovery
	EnrichWorkers int // concurrent enrichment lookups
}

// DefaultLimits are used for any non-positive Limits field.
var DefaultLimits = Limits{
	DepthCeiling:  graph.DefaultDepthCeiling,
	PathHops:      graph.DefaultPathHops,
	ResultCap:     100,
	EnrichWorkers: 4,
}

func (l Limits) withDefaults() Limits {
	if l.DepthCeiling <= 0 {
		l.DepthCeiling = DefaultLimits.DepthCeiling
	}

	if l.PathHops <= 0 {
		l.PathHops = DefaultLimits.PathHops
	}

	if l.ResultCap <= 0 {
		l.ResultCap = DefaultLimits.ResultCap
	}

	if l.EnrichWorkers <= 0 {
		l.EnrichWorkers = DefaultLimits.EnrichWorkers
	}

	return l
}

// KinshipService answers relative discovery and connection path queries
// over the family relationship graph.
type KinshipService struct {
	edges   EdgeSource
	persons PersonDirectory
	limits  Limits
	log     *logrus.Logger
}

// NewKinshipService creates a KinshipService.
func NewKinshipService(edges EdgeSource, persons PersonDirectory, limits Limits, log *logrus.Logger) *KinshipService {
	return &KinshipService{edges: edges, persons: persons, limits: limits.withDefaults(), log: log}
}

// Limits returns the service's effective bounds.
func (s *KinshipService) Limits() Limits {
	return s.limits
}

// buildAdjacency loads the edge scope, resolves genders for inverse
// labeling, and normalizes into the per-query adjacency view.
func (s *KinshipService) buildAdjacency(ctx context.Context, edges []models.RelationshipEdge) (*graph.Adjacency, error) {
	ids := make(map[string]bool, len(edges)*2)
	for _, e := range edges {
		ids[e.Source] = true
		ids[e.Target] = true
	}

	idList := make([]string, 0, len(ids))
	for id := range ids {
		idList = append(idList, id)
	}

	genders, err := s.edges.LookupGenders(ctx, idList)
	if err != nil {
		return nil, fmt.Errorf("resolving genders: %w", err)
	}

	adj, err := graph.Build(edges, genders)
	if err != nil {
		return nil, err
	}

	return adj, nil
}

func clampDepth(depth, ceiling int) int {
	if depth < 1 {
		depth = 1
	}

	if depth > ceiling {
		depth = ceiling
	}

	return depth
}

// Discover returns the relatives reachable from rootID within maxDepth
// hops, filtered, enriched, ordered, and capped.
func (s *KinshipService) Discover(
	ctx context.Context, rootID string, maxDepth int, mode models.DepthMode, filter models.DiscoveryFilter,
) (*models.DiscoverResult, error) {
	depth := clampDepth(maxDepth, s.limits.DepthCeiling)

	s.log.WithFields(logrus.Fields{
		"root_id":   rootID,
		"max_depth": depth,
		"mode":      mode,
	}).Debug("kinship.discover")

	// The root must be a real person even when it has no relationships;
	// an absent root is a client error, an isolated one an empty result.
	if _, err := s.persons.LookupPerson(ctx, rootID); err != nil {
		return nil, err
	}

	edges, err := s.edges.LoadEdgesNear(ctx, rootID, depth)
	if err != nil {
		return nil, fmt.Errorf("loading edge scope: %w", err)
	}

	adj, err := s.buildAdjacency(ctx, edges)
	if err != nil {
		return nil, err
	}

	if !adj.Contains(rootID) {
		return &models.DiscoverResult{Relatives: []models.Relative{}}, nil
	}

	depths, err := graph.Discover(adj, rootID, graph.DiscoverOptions{
		MaxDepth: depth,
		Mode:     mode,
		Ceiling:  s.limits.DepthCeiling,
	})
	if err != nil {
		return nil, err
	}

	return s.assembleDiscovery(ctx, depths, filter)
}

// DiscoverLevels streams raw BFS levels from rootID to onLevel as they
// complete, for progressive consumption. No filtering or enrichment.
func (s *KinshipService) DiscoverLevels(
	ctx context.Context, rootID string, maxDepth int, onLevel func(depth int, ids []string) error,
) error {
	depth := clampDepth(maxDepth, s.limits.DepthCeiling)

	if _, err := s.persons.LookupPerson(ctx, rootID); err != nil {
		return err
	}

	edges, err := s.edges.LoadEdgesNear(ctx, rootID, depth)
	if err != nil {
		return fmt.Errorf("loading edge scope: %w", err)
	}

	adj, err := s.buildAdjacency(ctx, edges)
	if err != nil {
		return err
	}

	if !adj.Contains(rootID) {
		return nil
	}

	return graph.DiscoverLevels(adj, rootID, graph.DiscoverOptions{
		MaxDepth: depth,
		Ceiling:  s.limits.DepthCeiling,
	}, onLevel)
}

// FindPath returns the shortest labeled relationship chain between two
// persons, or a no-connection result.
func (s *KinshipService) FindPath(ctx context.Context, fromID, toID string) (*models.PathResult, error) {
	s.log.WithFields(logrus.Fields{
		"from_id": fromID,
		"to_id":   toID,
	}).Debug("kinship.path")

	from, err := s.persons.LookupPerson(ctx, fromID)
	if err != nil {
		return nil, err
	}

	if _, err := s.persons.LookupPerson(ctx, toID); err != nil {
		return nil, err
	}

	// Same person on both ends: a degenerate single-node path reported
	// as no meaningful connection.
	if fromID == toID {
		return &models.PathResult{
			Trivial:     true,
			Path:        []models.PathStep{{PersonID: fromID, FullName: from.FullName()}},
			PersonCount: 1,
		}, nil
	}

	edges, err := s.edges.LoadAllEdges(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading edge scope: %w", err)
	}

	adj, err := s.buildAdjacency(ctx, edges)
	if err != nil {
		return nil, err
	}

	// A person with no relationships cannot be connected to anyone.
	if !adj.Contains(fromID) || !adj.Contains(toID) {
		return &models.PathResult{Path: []models.PathStep{}}, nil
	}

	p, err := graph.FindPath(adj, fromID, toID, s.limits.PathHops)
	if err != nil {
		return nil, err
	}

	return s.assemblePath(ctx, p)
}
