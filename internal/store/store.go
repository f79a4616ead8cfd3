// Package store provides focused, single-concern data access stores for
// the kinship graph: person lookups for enrichment and relationship
// edge loading for traversal scope.
//
// Each store owns one domain and embeds shared helpers via the Base
// struct. Stores never import each other. All access is read-only; the
// engine never mutates person or relationship data.
package store

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kinshiphq/kinship/internal/dbpool"
)

const defaultQueryTimeout = 30 * time.Second

// Base contains shared dependencies for all stores.
// Embed this in each store struct.
type Base struct {
	Pool *dbpool.Pool
	Log  *logrus.Logger
}

// withTimeout creates a context with the default query timeout.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultQueryTimeout)
}
