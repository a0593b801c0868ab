package v1

import (
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/studentportal/portal/internal/entity"
)

// Session cookie names.
const (
	CookieToken  = "token"
	CookieUser   = "user"
	CookieUUID   = "uuid"
	CookieEtabID = "EtabId"
	CookieDias   = "dias"
)

// IdentityFromRequest reads the session cookies. Missing cookies leave the
// matching field empty.
func IdentityFromRequest(c *gin.Context) entity.Identity {
	return entity.Identity{
		Token:  cookie(c, CookieToken),
		UserID: cookie(c, CookieUser),
		UUID:   cookie(c, CookieUUID),
		EtabID: cookie(c, CookieEtabID),
		Dias:   cookie(c, CookieDias),
	}
}

// cookie returns the unescaped value; a value that fails to unescape is used as sent.
func cookie(c *gin.Context, name string) string {
	raw, err := c.Request.Cookie(name)
	if err != nil {
		return ""
	}

	if v, err := url.QueryUnescape(raw.Value); err == nil {
		return v
	}

	return raw.Value
}
