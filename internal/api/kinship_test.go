package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kinshiphq/kinship/internal/api"
	"github.com/kinshiphq/kinship/internal/models"
)

func discoverRouter(repo *mockKinshipRepo, maxDepth int) *gin.Engine {
	h := api.NewKinshipHandler(repo, testLogger(), maxDepth)

	r := gin.New()
	r.GET("/persons/:id/relatives", h.Discover)
	r.GET("/path/:from/:to", h.Path)

	return r
}

func TestDiscover_ReturnsRelatives(t *testing.T) {
	t.Parallel()

	repo := &mockKinshipRepo{
		discoverFn: func(_ context.Context, rootID string, maxDepth int, mode models.DepthMode, filter models.DiscoveryFilter) (*models.DiscoverResult, error) {
			if rootID != "p1" {
				t.Errorf("rootID = %q, want p1", rootID)
			}
			if maxDepth != 3 {
				t.Errorf("maxDepth = %d, want 3", maxDepth)
			}
			if mode != models.DepthOnlyAt {
				t.Errorf("mode = %q, want only_at", mode)
			}
			if !filter.AliveOnly {
				t.Error("filter.AliveOnly = false, want true")
			}

			return &models.DiscoverResult{
				Relatives: []models.Relative{
					{PersonID: "p2", Depth: 1, FullName: "Ann Stone", Alive: true},
				},
				TotalCount: 1,
			}, nil
		},
	}

	w := doRequest(discoverRouter(repo, 20), http.MethodGet, "/persons/p1/relatives?depth=3&mode=only_at&alive=true", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.DiscoverResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if resp.TotalCount != 1 {
		t.Errorf("total_count = %d, want 1", resp.TotalCount)
	}

	if len(resp.Relatives) != 1 || resp.Relatives[0].PersonID != "p2" {
		t.Errorf("unexpected relatives: %+v", resp.Relatives)
	}
}

func TestDiscover_ClampsDepthToConfiguredMax(t *testing.T) {
	t.Parallel()

	var got int
	repo := &mockKinshipRepo{
		discoverFn: func(_ context.Context, _ string, maxDepth int, _ models.DepthMode, _ models.DiscoveryFilter) (*models.DiscoverResult, error) {
			got = maxDepth

			return &models.DiscoverResult{Relatives: []models.Relative{}}, nil
		},
	}

	w := doRequest(discoverRouter(repo, 5), http.MethodGet, "/persons/p1/relatives?depth=50", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if got != 5 {
		t.Errorf("repo received depth %d, want clamped 5", got)
	}
}

func TestDiscover_PersonNotFound(t *testing.T) {
	t.Parallel()

	repo := &mockKinshipRepo{
		discoverFn: func(_ context.Context, _ string, _ int, _ models.DepthMode, _ models.DiscoveryFilter) (*models.DiscoverResult, error) {
			return nil, models.ErrPersonNotFound
		},
	}

	w := doRequest(discoverRouter(repo, 20), http.MethodGet, "/persons/missing/relatives", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDiscover_InvalidDepthMode(t *testing.T) {
	t.Parallel()

	repo := &mockKinshipRepo{
		discoverFn: func(_ context.Context, _ string, _ int, _ models.DepthMode, _ models.DiscoveryFilter) (*models.DiscoverResult, error) {
			t.Error("repo should not be called for an invalid mode")

			return nil, nil
		},
	}

	w := doRequest(discoverRouter(repo, 20), http.MethodGet, "/persons/p1/relatives?mode=sideways", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDiscover_InvalidGenderFilter(t *testing.T) {
	t.Parallel()

	repo := &mockKinshipRepo{
		discoverFn: func(_ context.Context, _ string, _ int, _ models.DepthMode, _ models.DiscoveryFilter) (*models.DiscoverResult, error) {
			t.Error("repo should not be called for an invalid filter")

			return nil, nil
		},
	}

	w := doRequest(discoverRouter(repo, 20), http.MethodGet, "/persons/p1/relatives?gender=martian", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDiscover_OversizedID(t *testing.T) {
	t.Parallel()

	repo := &mockKinshipRepo{}
	longID := strings.Repeat("x", 300)

	w := doRequest(discoverRouter(repo, 20), http.MethodGet, "/persons/"+longID+"/relatives", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDiscover_InternalError(t *testing.T) {
	t.Parallel()

	repo := &mockKinshipRepo{
		discoverFn: func(_ context.Context, _ string, _ int, _ models.DepthMode, _ models.DiscoveryFilter) (*models.DiscoverResult, error) {
			return nil, errors.New("pool exhausted")
		},
	}

	w := doRequest(discoverRouter(repo, 20), http.MethodGet, "/persons/p1/relatives", "")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestPath_ReturnsLabeledPath(t *testing.T) {
	t.Parallel()

	repo := &mockKinshipRepo{
		findPathFn: func(_ context.Context, fromID, toID string) (*models.PathResult, error) {
			if fromID != "a" || toID != "b" {
				t.Errorf("ids = (%q, %q), want (a, b)", fromID, toID)
			}

			return &models.PathResult{
				ConnectionFound: true,
				Path: []models.PathStep{
					{PersonID: "a", FullName: "Ray Stone"},
					{PersonID: "b", IncomingKind: models.KindDaughter, FullName: "Ann Stone"},
				},
				PersonCount: 2,
			}, nil
		},
	}

	w := doRequest(discoverRouter(repo, 20), http.MethodGet, "/path/a/b", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.PathResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if !resp.ConnectionFound || resp.PersonCount != 2 {
		t.Errorf("unexpected result: %+v", resp)
	}

	if resp.Path[1].IncomingKind != models.KindDaughter {
		t.Errorf("incoming_kind = %q, want daughter", resp.Path[1].IncomingKind)
	}
}

func TestPath_NoConnectionIsOK(t *testing.T) {
	t.Parallel()

	repo := &mockKinshipRepo{
		findPathFn: func(_ context.Context, _, _ string) (*models.PathResult, error) {
			return &models.PathResult{ConnectionFound: false, Path: []models.PathStep{}}, nil
		},
	}

	w := doRequest(discoverRouter(repo, 20), http.MethodGet, "/path/a/z", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp models.PathResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if resp.ConnectionFound {
		t.Error("connection_found = true, want false")
	}
}

func TestPath_PersonNotFound(t *testing.T) {
	t.Parallel()

	repo := &mockKinshipRepo{
		findPathFn: func(_ context.Context, _, _ string) (*models.PathResult, error) {
			return nil, models.ErrPersonNotFound
		},
	}

	w := doRequest(discoverRouter(repo, 20), http.MethodGet, "/path/a/missing", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
