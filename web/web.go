// Package web embeds the single-page browser client and serves it from the
// API process, so a deployment is one binary.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var static embed.FS

// Register mounts the client at the web root.
func Register(r *gin.Engine) {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	// Serving "/" from the fs root avoids net/http's index.html redirect.
	r.GET("/", func(c *gin.Context) {
		c.FileFromFS("/", http.FS(sub))
	})
	r.StaticFS("/static", http.FS(sub))
}
