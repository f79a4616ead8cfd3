package graph_test

import (
	"errors"
	"testing"

	"github.com/kinshiphq/kinship/internal/graph"
	"github.com/kinshiphq/kinship/internal/models"
)

func TestFindPathLabels(t *testing.T) {
	adj := familyAdjacency(t)

	p, err := graph.FindPath(adj, "root", "gc1", 0)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}

	if !p.Found {
		t.Fatal("FindPath root→gc1 not found")
	}

	wantIDs := []string{"root", "c1", "gc1"}
	if len(p.Steps) != len(wantIDs) {
		t.Fatalf("path = %+v, want %v", p.Steps, wantIDs)
	}

	for i, id := range wantIDs {
		if p.Steps[i].ID != id {
			t.Errorf("step[%d] = %q, want %q", i, p.Steps[i].ID, id)
		}
	}

	if p.Steps[0].IncomingKind != "" {
		t.Errorf("first step kind = %q, want empty", p.Steps[0].IncomingKind)
	}
	if p.Steps[1].IncomingKind != models.KindSon {
		t.Errorf("step[1] kind = %q, want son", p.Steps[1].IncomingKind)
	}
	if p.Steps[2].IncomingKind != models.KindDaughter {
		t.Errorf("step[2] kind = %q, want daughter", p.Steps[2].IncomingKind)
	}
}

func TestFindPathSymmetry(t *testing.T) {
	adj := familyAdjacency(t)

	forward, err := graph.FindPath(adj, "root", "gc1", 0)
	if err != nil {
		t.Fatalf("FindPath forward: %v", err)
	}

	reverse, err := graph.FindPath(adj, "gc1", "root", 0)
	if err != nil {
		t.Fatalf("FindPath reverse: %v", err)
	}

	if len(forward.Steps) != len(reverse.Steps) {
		t.Errorf("path lengths differ: %d vs %d", len(forward.Steps), len(reverse.Steps))
	}

	for i := range forward.Steps {
		j := len(reverse.Steps) - 1 - i
		if forward.Steps[i].ID != reverse.Steps[j].ID {
			t.Errorf("forward[%d] = %q, reverse[%d] = %q, want mirrored ids", i, forward.Steps[i].ID, j, reverse.Steps[j].ID)
		}
	}
}

func TestFindPathNoConnection(t *testing.T) {
	adj, err := graph.Build([]models.RelationshipEdge{
		edge("a", "b", models.KindSpouse),
		edge("x", "y", models.KindSpouse),
	}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	p, err := graph.FindPath(adj, "a", "x", 0)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}

	if p.Found || len(p.Steps) != 0 {
		t.Errorf("disjoint components = %+v, want empty not-found path", p)
	}
}

func TestFindPathSelf(t *testing.T) {
	adj := familyAdjacency(t)

	p, err := graph.FindPath(adj, "root", "root", 0)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}

	if p.Found {
		t.Error("self path reported as a found connection")
	}
	if !p.Trivial {
		t.Error("self path not flagged trivial")
	}
	if len(p.Steps) != 1 || p.Steps[0].ID != "root" || p.Steps[0].IncomingKind != "" {
		t.Errorf("self path steps = %+v, want single unlabeled root", p.Steps)
	}
}

func TestFindPathThroughCycle(t *testing.T) {
	// A marriage closes a loop; the search must still pick the shortest
	// route a→d (2 hops via e) over the 3-hop chain.
	adj, err := graph.Build([]models.RelationshipEdge{
		edge("a", "b", models.KindSon),
		edge("b", "c", models.KindSon),
		edge("c", "d", models.KindSon),
		edge("a", "e", models.KindSpouse),
		edge("e", "d", models.KindSpouse),
	}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	p, err := graph.FindPath(adj, "a", "d", 0)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}

	if !p.Found || len(p.Steps) != 3 {
		t.Fatalf("path = %+v, want the 3-node route through e", p.Steps)
	}
	if p.Steps[1].ID != "e" {
		t.Errorf("middle step = %q, want e", p.Steps[1].ID)
	}
}

func TestFindPathHopCeiling(t *testing.T) {
	adj, err := graph.Build([]models.RelationshipEdge{
		edge("n0", "n1", models.KindSon),
		edge("n1", "n2", models.KindSon),
		edge("n2", "n3", models.KindSon),
		edge("n3", "n4", models.KindSon),
	}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	p, err := graph.FindPath(adj, "n0", "n4", 2)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}

	if p.Found {
		t.Error("4-hop path found under a 2-hop ceiling")
	}

	p, err = graph.FindPath(adj, "n0", "n4", 4)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}

	if !p.Found || len(p.Steps) != 5 {
		t.Errorf("path under sufficient ceiling = %+v, want 5 nodes", p.Steps)
	}
}

func TestFindPathErrors(t *testing.T) {
	adj := familyAdjacency(t)

	if _, err := graph.FindPath(adj, "root", "nobody", 0); !errors.Is(err, models.ErrPersonNotFound) {
		t.Errorf("FindPath to absent person = %v, want ErrPersonNotFound", err)
	}

	if _, err := graph.FindPath(adj, "nobody", "root", 0); !errors.Is(err, models.ErrPersonNotFound) {
		t.Errorf("FindPath from absent person = %v, want ErrPersonNotFound", err)
	}
}
