package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studentportal/portal/config"
)

type versionRoute struct {
	cfg *config.Config
}

type versionResponse struct {
	Name    string `json:"name"`
	Repo    string `json:"repo"`
	Current string `json:"current"`
}

// NewVersionRoute -.
func NewVersionRoute(cfg *config.Config) *versionRoute {
	return &versionRoute{cfg: cfg}
}

// CurrentVersionHandler reports the running build.
func (vr versionRoute) CurrentVersionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, versionResponse{
		Name:    vr.cfg.App.Name,
		Repo:    vr.cfg.App.Repo,
		Current: vr.cfg.App.Version,
	})
}
