package logging

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// WithReq builds a log entry enriched with common HTTP request fields:
// request_id (set by middleware), method, path and client ip. Extras are
// merged on top and take precedence on key conflicts.
func WithReq(c *gin.Context, extras log.Fields) *log.Entry {
	if c == nil {
		return log.WithFields(extras)
	}
	path := c.FullPath()
	if path == "" && c.Request != nil && c.Request.URL != nil {
		path = c.Request.URL.Path
	}
	rid, _ := c.Get("request_id")
	fields := log.Fields{
		"request_id": rid,
		"method":     c.Request.Method,
		"path":       path,
		"ip":         c.ClientIP(),
	}
	for k, v := range extras {
		fields[k] = v
	}
	return log.WithFields(fields)
}

// DurationMS converts a duration to integer milliseconds for logging.
func DurationMS(d time.Duration) int64 { return d.Milliseconds() }
