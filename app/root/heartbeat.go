package root

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Heartbeat answers liveness probes and reports how long the server has been up
func Heartbeat(started time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Uptime", time.Since(started).Round(time.Second).String())
		c.Status(http.StatusOK)
	}
}
