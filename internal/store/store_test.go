package store_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kinshiphq/kinship/internal/dbpool"
	"github.com/kinshiphq/kinship/internal/models"
	"github.com/kinshiphq/kinship/internal/store"
)

// testEnv holds shared test infrastructure (single pool across all tests).
type testEnv struct {
	pool *dbpool.Pool
	log  *logrus.Logger
}

var sharedEnv *testEnv

func getTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if sharedEnv != nil {
		return sharedEnv
	}

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()

	pool, err := dbpool.NewPool(ctx, dbURL)
	if err != nil {
		t.Fatalf("connecting to test DB: %v", err)
	}

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	sharedEnv = &testEnv{
		pool: pool,
		log:  log,
	}

	return sharedEnv
}

// setupTestBase returns a Base backed by the shared pool.
func setupTestBase(t *testing.T) store.Base {
	t.Helper()

	env := getTestEnv(t)

	return store.Base{Pool: env.pool, Log: env.log}
}

// insertPerson creates a person row with a fresh UUID, removed after the test.
func insertPerson(t *testing.T, base store.Base, firstName string, gender models.Gender) string {
	t.Helper()

	ctx := context.Background()
	id := uuid.New().String()

	_, err := base.Pool.Exec(ctx,
		"INSERT INTO persons (id, first_name, last_name, gender) VALUES ($1, $2, 'Test', $3)",
		id, firstName, string(gender),
	)
	if err != nil {
		t.Fatalf("inserting test person: %v", err)
	}

	t.Cleanup(func() {
		_, _ = base.Pool.Exec(context.Background(), "DELETE FROM persons WHERE id = $1", id)
	})

	return id
}

// insertEdge creates a relationship row; person cascade deletes clean it up.
func insertEdge(t *testing.T, base store.Base, sourceID, targetID string, kind models.RelationKind) {
	t.Helper()

	_, err := base.Pool.Exec(context.Background(),
		"INSERT INTO relationships (source_id, target_id, kind) VALUES ($1, $2, $3)",
		sourceID, targetID, string(kind),
	)
	if err != nil {
		t.Fatalf("inserting test relationship: %v", err)
	}
}
