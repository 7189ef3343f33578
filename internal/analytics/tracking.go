package analytics

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andyli/portfolio/internal/logger"
)

// Recorder stores a page view.
type Recorder interface {
	Record(ctx context.Context, ip, userAgent, path string) error
}

// untrackedPrefixes are asset, fragment and admin paths; only page loads count.
var untrackedPrefixes = []string{
	"/static/",
	"/assets/",
	"/fragments/",
	"/api/",
	"/admin/",
	"/healthz",
	"/favicon",
	"/privacy",
}

// ShouldTrack reports whether a request for path counts as a page view.
// Requests with Do Not Track set are never counted.
func ShouldTrack(method, path, dnt string) bool {
	if method != "GET" || dnt == "1" {
		return false
	}
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// Middleware records page views in the background.
func Middleware(rec Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !ShouldTrack(c.Request.Method, path, c.GetHeader("DNT")) {
			c.Next()
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := rec.Record(ctx, ip, ua, path); err != nil {
				log := logger.GetAnalyticsLogger()
				log.Error().Err(err).Str("path", path).Msg("Error recording visitor")
			}
		}()
		c.Next()
	}
}
