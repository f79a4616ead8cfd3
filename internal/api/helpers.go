package api

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kinshiphq/kinship/internal/middleware"
	"github.com/kinshiphq/kinship/internal/models"
)

func ginLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		if rid, exists := c.Get(middleware.RequestIDKey); exists {
			fields["request_id"] = rid
		}
		log.WithFields(fields).Info("request")
	}
}

func parseInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}

	return v
}

// validatePathID checks that a path parameter ID is non-empty and within length limits.
func validatePathID(id string) error {
	if id == "" {
		return fmt.Errorf("id must not be empty")
	}
	if len(id) > 255 {
		return fmt.Errorf("id exceeds maximum length of 255")
	}
	return nil
}

// parseFilter builds a DiscoveryFilter from query parameters. A gender
// value outside the recognized set is a client error rather than a
// silent unknown.
func parseFilter(c *gin.Context) (models.DiscoveryFilter, error) {
	f := models.DiscoveryFilter{
		AliveOnly:     c.Query("alive") == "true",
		CountryID:     c.Query("country_id"),
		StateID:       c.Query("state_id"),
		DistrictID:    c.Query("district_id"),
		SubDistrictID: c.Query("sub_district_id"),
		LocalityID:    c.Query("locality_id"),
	}

	if g := c.Query("gender"); g != "" {
		parsed := models.ParseGender(g)
		if parsed == models.GenderUnknown && !strings.EqualFold(strings.TrimSpace(g), "unknown") {
			return f, fmt.Errorf("%w: gender %q", models.ErrInvalidFilter, g)
		}

		f.Gender = parsed
	}

	return f, nil
}
