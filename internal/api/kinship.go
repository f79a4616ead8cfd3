package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kinshiphq/kinship/internal/metrics"
	"github.com/kinshiphq/kinship/internal/models"
)

// KinshipHandler serves the relative-discovery and connection-path
// endpoints.
type KinshipHandler struct {
	repo KinshipRepository
	log  *logrus.Logger

	maxDepth int
}

// NewKinshipHandler creates a KinshipHandler with the given service and logger.
func NewKinshipHandler(repo KinshipRepository, log *logrus.Logger, maxDepth int) *KinshipHandler {
	return &KinshipHandler{repo: repo, log: log, maxDepth: maxDepth}
}

// Discover handles GET /api/v1/persons/:id/relatives.
func (h *KinshipHandler) Discover(c *gin.Context) {
	rootID := c.Param("id")
	if err := validatePathID(rootID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	depth := parseInt(c.DefaultQuery("depth", "1"), 1)
	if h.maxDepth > 0 && depth > h.maxDepth {
		depth = h.maxDepth
	}

	mode, err := models.ParseDepthMode(c.Query("mode"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	result, err := h.repo.Discover(c.Request.Context(), rootID, depth, mode, filter)
	if err != nil {
		if errors.Is(err, models.ErrPersonNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "person not found")

			return
		}

		h.log.WithError(err).Error("discovering relatives")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	metrics.DiscoveryDepth.Observe(float64(depth))
	metrics.DiscoveryResults.Add(float64(result.TotalCount))

	h.log.WithFields(logrus.Fields{"action": "kinship.discover", "person_id": rootID, "depth": depth, "mode": mode, "count": result.TotalCount}).Info("audit")

	c.JSON(http.StatusOK, result)
}

// Path handles GET /api/v1/path/:from/:to.
func (h *KinshipHandler) Path(c *gin.Context) {
	fromID := c.Param("from")
	toID := c.Param("to")

	for _, id := range []string{fromID, toID} {
		if err := validatePathID(id); err != nil {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

			return
		}
	}

	result, err := h.repo.FindPath(c.Request.Context(), fromID, toID)
	if err != nil {
		if errors.Is(err, models.ErrPersonNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "person not found")

			return
		}

		h.log.WithError(err).Error("finding connection path")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	if result.ConnectionFound {
		metrics.PathLength.Observe(float64(result.PersonCount))
	}

	h.log.WithFields(logrus.Fields{"action": "kinship.path", "from": fromID, "to": toID, "found": result.ConnectionFound}).Info("audit")

	c.JSON(http.StatusOK, result)
}
