// Package web serves the embedded single-page wizard UI.
package web

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed index.html
var content embed.FS

// Register mounts the UI page at the router root.
func Register(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		data, err := content.ReadFile("index.html")
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})
}
