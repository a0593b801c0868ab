package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/studentportal/portal/config"
	"github.com/studentportal/portal/pkg/logger"
)

// setupUIRoutes hands page navigations to the external UI when one is
// configured. The entry route answers itself otherwise, and unknown pages 404.
func setupUIRoutes(handler *gin.Engine, l logger.Interface, cfg *config.Config) {
	ui := strings.TrimRight(cfg.Portal.UIURL, "/")

	page := func(c *gin.Context) {
		if ui != "" {
			c.Redirect(http.StatusTemporaryRedirect, ui+c.Request.URL.RequestURI())

			return
		}

		if c.Request.URL.Path == cfg.Portal.EntryRoute {
			c.JSON(http.StatusOK, gin.H{"name": cfg.App.Name, "signedIn": false})

			return
		}

		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	}

	if ui != "" {
		l.Info("pages served by external UI", "url", ui)
	}

	handler.GET(cfg.Portal.EntryRoute, page)

	handler.NoRoute(func(c *gin.Context) {
		if isAPIPath(c.Request.URL.Path) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})

			return
		}

		page(c)
	})
}

// isAPIPath checks if the path is an API endpoint that should not be redirected.
func isAPIPath(path string) bool {
	for _, prefix := range []string{"/api/", "/healthz", "/metrics", "/version"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}
