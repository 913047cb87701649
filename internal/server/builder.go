package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"genrelay-go/internal/config"
	"genrelay-go/internal/constants"
	"genrelay-go/internal/handlers"
	mw "genrelay-go/internal/middleware"
)

// Build constructs the Gin engine: standard middleware stack, method
// enforcement and the generation routes.
func Build(cfg *config.Config) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	_ = engine.SetTrustedProxies([]string{})

	engine.Use(mw.Recovery(), mw.RequestID(), mw.CORS())
	if cfg.RequestLog {
		engine.Use(mw.RequestLogger())
	}

	// The generation endpoint is POST-only; requests with any other method
	// get a 405 rather than gin's default 404.
	engine.HandleMethodNotAllowed = true
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	root := engine.Group(cfg.BasePath)

	gen := handlers.NewGenerate(cfg)
	root.POST("/v1/generate", gen.Generate)

	root.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": constants.Version})
	})

	return engine
}
