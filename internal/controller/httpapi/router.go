// Package httpapi implements routing paths. Each services in own file.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/studentportal/portal/config"
	v1 "github.com/studentportal/portal/internal/controller/httpapi/v1"
	"github.com/studentportal/portal/internal/usecase"
	"github.com/studentportal/portal/pkg/logger"
)

// NewRouter -.
func NewRouter(handler *gin.Engine, l logger.Interface, t usecase.Usecases, cfg *config.Config) {
	// Options
	handler.Use(RequestID())
	handler.Use(gin.Logger())
	handler.Use(gin.Recovery())
	handler.Use(Metrics())
	handler.Use(AccessGuard(cfg.Portal, l))

	// Entry route and page fallthrough
	setupUIRoutes(handler, l, cfg)

	// K8s probe
	handler.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Prometheus metrics
	handler.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// version info
	vr := v1.NewVersionRoute(cfg)
	handler.GET("/version", vr.CurrentVersionHandler)

	// Routers
	h := handler.Group("/api/v1")
	{
		v1.NewPortalRoutes(h, t.Portal, l)
	}
}
