package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/studentportal/portal/config"
	v1 "github.com/studentportal/portal/internal/controller/httpapi/v1"
	"github.com/studentportal/portal/internal/entity"
	"github.com/studentportal/portal/pkg/logger"
)

// Decision is the outcome of the access check for one navigation.
type Decision struct {
	Redirect bool
	Location string
}

// Decide routes a navigation to path. A signed-in user at the entry route
// goes to their landing route; an anonymous user anywhere else goes back to
// the entry route. Everything else passes.
func Decide(path, entry string, hasToken bool, landing string) Decision {
	atEntry := path == entry

	var d Decision

	switch {
	case atEntry && hasToken:
		d = Decision{Redirect: true, Location: landing}
	case !atEntry && !hasToken:
		d = Decision{Redirect: true, Location: entry}
	}

	if d.Redirect && (d.Location == "" || d.Location == path) {
		return Decision{}
	}

	return d
}

// AccessGuard applies Decide to every request outside the public paths.
func AccessGuard(cfg config.Portal, l logger.Interface) gin.HandlerFunc {
	landing := entity.LandingRoutes{
		Student: cfg.LandingRoute,
		Teacher: cfg.TeacherRoute,
		Admin:   cfg.AdminRoute,
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if isPublic(path, cfg.PublicPaths) {
			c.Next()

			return
		}

		id := v1.IdentityFromRequest(c)

		target := ""
		if id.HasToken() {
			target = landing.For(id.Role())
		}

		d := Decide(path, cfg.EntryRoute, id.HasToken(), target)
		if !d.Redirect {
			c.Next()

			return
		}

		l.Debug("access guard redirect", "path", path, "location", d.Location, "token", id.RedactedToken())
		c.Redirect(http.StatusTemporaryRedirect, d.Location)
		c.Abort()
	}
}

// isPublic matches exact paths, or prefixes for entries ending in "/".
func isPublic(path string, public []string) bool {
	for _, p := range public {
		if p == path || (strings.HasSuffix(p, "/") && strings.HasPrefix(path, p)) {
			return true
		}
	}

	return false
}
