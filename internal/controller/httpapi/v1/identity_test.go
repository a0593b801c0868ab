package v1

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/studentportal/portal/internal/entity"
)

func TestIdentityFromRequest(t *testing.T) {
	t.Parallel()

	dias := `[{"id":1,"anneeAcademiqueCode":"2024-2025"}]`

	tests := []struct {
		name     string
		cookies  []*http.Cookie
		expected entity.Identity
	}{
		{
			name:     "no cookies",
			expected: entity.Identity{},
		},
		{
			name: "all cookies",
			cookies: []*http.Cookie{
				{Name: CookieToken, Value: "tok"},
				{Name: CookieUser, Value: "42"},
				{Name: CookieUUID, Value: "abc"},
				{Name: CookieEtabID, Value: "3"},
				{Name: CookieDias, Value: url.QueryEscape(dias)},
			},
			expected: entity.Identity{Token: "tok", UserID: "42", UUID: "abc", EtabID: "3", Dias: dias},
		},
		{
			name:     "token only",
			cookies:  []*http.Cookie{{Name: CookieToken, Value: "tok"}},
			expected: entity.Identity{Token: "tok"},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", http.NoBody)

			for _, ck := range tc.cookies {
				c.Request.AddCookie(ck)
			}

			assert.Equal(t, tc.expected, IdentityFromRequest(c))
		})
	}
}
