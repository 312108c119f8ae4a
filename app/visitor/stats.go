package visitor

import (
	"bitwise74/visitor-api/internal"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VisitorStats returns every record, newest first.
// TODO: decide on pagination and default auth once an admin UI consumes this
func VisitorStats(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")

	visitors, err := d.Visitors.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to fetch visitor stats",
			"requestID": requestID,
		})

		zap.L().Error("Error fetching stats", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, visitors)
}
