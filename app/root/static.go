package root

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// StaticFallback serves files from dir and falls back to index.html for any
// other GET so the page owns its own routing.
func StaticFallback(dir string) gin.HandlerFunc {
	index := filepath.Join(dir, "index.html")

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		p := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+c.Request.URL.Path)))
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			c.File(p)
			return
		}

		c.File(index)
	}
}
