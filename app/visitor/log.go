package visitor

import (
	"bitwise74/visitor-api/internal"
	"bitwise74/visitor-api/pkg/clientip"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VisitorLog records one page view. The request body is ignored.
func VisitorLog(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")

	ip := clientip.FromRequest(c.Request)
	ua := c.GetHeader("User-Agent")

	v, err := d.Visitors.Log(c.Request.Context(), ip, ua)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "Failed to log visitor",
			"requestID": requestID,
		})

		zap.L().Error("Error logging visitor", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Visitor logged successfully",
		"data":    v.Summary(),
	})
}
