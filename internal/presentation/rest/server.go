package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lenddesk/los/pkg/postgres"
)

// NewEngine builds the gin engine with all routes registered.
func NewEngine(
	apps *ApplicationHandler,
	products *ProductHandler,
	pool *pgxpool.Pool,
	metricsHandler http.Handler,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "los"})
	})
	engine.GET("/readyz", func(c *gin.Context) {
		if err := postgres.HealthCheck(c.Request.Context(), pool); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "service": "los"})
	})
	engine.GET("/metrics", gin.WrapH(metricsHandler))

	api := engine.Group("/api/v1")
	apps.RegisterRoutes(api)
	products.RegisterRoutes(api)

	return engine
}
