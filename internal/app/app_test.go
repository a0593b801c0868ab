package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/studentportal/portal/config"
	"github.com/studentportal/portal/internal/usecase"
	"github.com/studentportal/portal/pkg/logger"
)

func appConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.AllowedOrigins = []string{"https://portal.example.edu"}
	cfg.HTTP.AllowedHeaders = []string{"*"}
	cfg.Upstream = config.Upstream{
		BaseURL:        "http://upstream.test",
		Timeout:        10 * time.Second,
		ListingTimeout: 100 * time.Second,
		MaxRetries:     2,
		RetryWaitMin:   500 * time.Millisecond,
		RetryWaitMax:   4 * time.Second,
	}
	cfg.Cache = config.Cache{TTL: time.Minute, StaticTTL: time.Hour}
	cfg.Portal = config.Portal{
		EntryRoute:   "/",
		LandingRoute: "/dashboard",
		TeacherRoute: "/teacher/dashboard",
		AdminRoute:   "/admin/dashboard",
		PublicPaths:  []string{"/healthz"},
	}

	return cfg
}

func TestWriteTimeoutCoversListingCeiling(t *testing.T) {
	t.Parallel()

	// 100s * 3 attempts + 2 * 4s backoff + slack
	assert.Equal(t, 318*time.Second, writeTimeout(appConfig()))
}

func TestAllowsAnyOrigin(t *testing.T) {
	t.Parallel()

	assert.True(t, allowsAnyOrigin([]string{"https://a", "*"}))
	assert.False(t, allowsAnyOrigin([]string{"https://a"}))
	assert.False(t, allowsAnyOrigin(nil))
}

func TestSetupHTTPHandler(t *testing.T) {
	t.Parallel()

	cfg := appConfig()
	l := logger.New("error")

	handler := setupHTTPHandler(cfg, l, usecase.NewUseCases(cfg, l))

	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	req.Header.Set("Origin", "https://portal.example.edu")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://portal.example.edu", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
