package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kinshiphq/kinship/internal/metrics"
	"github.com/kinshiphq/kinship/internal/models"
)

const (
	watchWriteTimeout = 10 * time.Second
	watchMaxLifetime  = 5 * time.Minute
)

// hijackWriter suppresses gin's eager header flush during the upgrade.
// The WebSocket library writes the 101 status before hijacking, which
// would mark gin's response as written and make Hijack refuse; deferring
// the actual write keeps the connection hijackable.
type hijackWriter struct {
	gin.ResponseWriter
}

func (hijackWriter) WriteHeaderNow() {}

// levelFrame is one streamed BFS level.
type levelFrame struct {
	Level     int      `json:"level"`
	PersonIDs []string `json:"person_ids"`
}

// doneFrame terminates the stream with the cumulative person count.
type doneFrame struct {
	Done       bool   `json:"done"`
	TotalCount int    `json:"total_count"`
	Error      string `json:"error,omitempty"`
}

// watchHandler upgrades GET /api/v1/persons/:id/relatives/watch to a
// WebSocket and streams one frame per BFS level as discovery proceeds,
// followed by a final done frame. Frames are write-only; the client is
// not expected to send anything.
func watchHandler(streamer LevelStreamer, log *logrus.Logger, corsOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rootID := c.Param("id")
		if err := validatePathID(rootID); err != nil {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

			return
		}

		depth := parseInt(c.DefaultQuery("depth", "1"), 1)

		// CORS origins double as WebSocket origin patterns, same as the
		// HTTP middleware.
		conn, err := websocket.Accept(hijackWriter{c.Writer}, c.Request, &websocket.AcceptOptions{
			OriginPatterns: corsOrigins,
		})
		if err != nil {
			log.WithError(err).Error("websocket accept failed")

			return
		}
		defer conn.CloseNow() //nolint:errcheck // best-effort close on teardown

		metrics.WatchConnections.Inc()
		defer metrics.WatchConnections.Dec()

		ctx, cancel := context.WithTimeout(c.Request.Context(), watchMaxLifetime)
		defer cancel()

		total := 0
		err = streamer.DiscoverLevels(ctx, rootID, depth, func(level int, ids []string) error {
			total += len(ids)

			return writeFrame(ctx, conn, levelFrame{Level: level, PersonIDs: ids})
		})
		if err != nil {
			if errors.Is(err, models.ErrPersonNotFound) {
				_ = writeFrame(ctx, conn, doneFrame{Done: true, Error: "person not found"})
				conn.Close(websocket.StatusNormalClosure, "person not found") //nolint:errcheck

				return
			}

			log.WithError(err).Error("streaming discovery levels")
			conn.Close(websocket.StatusInternalError, "internal error") //nolint:errcheck

			return
		}

		if err := writeFrame(ctx, conn, doneFrame{Done: true, TotalCount: total}); err != nil {
			log.WithError(err).Debug("writing final watch frame")

			return
		}

		conn.Close(websocket.StatusNormalClosure, "") //nolint:errcheck
	}
}

// writeFrame marshals v and writes it as a single text message with a
// bounded write deadline.
func writeFrame(ctx context.Context, conn *websocket.Conn, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	wctx, cancel := context.WithTimeout(ctx, watchWriteTimeout)
	defer cancel()

	return conn.Write(wctx, websocket.MessageText, b)
}
