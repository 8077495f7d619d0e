package restapi

import (
	"strconv"

	"aurora_deployer/internal/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter builds the gin engine serving the introspection API.
func SetupRouter(handler *SettingsHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	router.Use(cors.New(corsConfig))
	router.Use(metricsMiddleware())

	router.GET("/healthz", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/settings", handler.GetSettingsHandler)
		v1.GET("/networks", handler.ListNetworksHandler)
		v1.GET("/networks/:name", handler.GetNetworkHandler)
		v1.GET("/networks/:name/accounts", handler.ListAccountsHandler)
	}

	return router
}

func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
