package scene

import (
	"bitwise74/visitor-api/internal/scene"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// SceneDescribe returns the scene built for the viewport given in the query
// so the page can render it without duplicating the constants.
func SceneDescribe(c *gin.Context) {
	requestID := c.GetString("requestID")

	width, err := strconv.Atoi(c.DefaultQuery("width", "1280"))
	if err != nil || width <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Width must be a positive number",
			"requestID": requestID,
		})
		return
	}

	height, err := strconv.Atoi(c.DefaultQuery("height", "0"))
	if err != nil || height < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Height can't be negative",
			"requestID": requestID,
		})
		return
	}

	reduced, err := strconv.ParseBool(c.DefaultQuery("reduced_motion", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "reduced_motion must be a boolean",
			"requestID": requestID,
		})
		return
	}

	s := scene.NewSession(scene.Viewport{
		Width:         width,
		Height:        height,
		ReducedMotion: reduced,
	})

	c.JSON(http.StatusOK, gin.H{
		"state":  s.State().String(),
		"mobile": width <= scene.MobileBreakpoint,
		"scene":  s.Scene,
	})
}
