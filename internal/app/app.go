// Package app configures and runs application.
package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	ginpprof "github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"github.com/studentportal/portal/config"
	"github.com/studentportal/portal/internal/controller/httpapi"
	"github.com/studentportal/portal/internal/upstream"
	"github.com/studentportal/portal/internal/usecase"
	"github.com/studentportal/portal/pkg/httpserver"
	"github.com/studentportal/portal/pkg/logger"
)

var Version = "DEVELOPMENT"

// writeSlack is added to the slowest upstream ceiling so the response can
// still be written after a listing call exhausts its retries.
const writeSlack = 10 * time.Second

// Run creates objects via constructors.
func Run(cfg *config.Config) {
	log := logger.New(cfg.Level)
	cfg.Version = Version
	log.Info("app - Run - version: " + cfg.Version)
	// route standard and Gin logs through our JSON logger
	logger.SetupStdLog(log)
	logger.SetupGin(log)

	// Use case
	usecases := usecase.NewUseCases(cfg, log)

	handler := setupHTTPHandler(cfg, log, usecases)

	httpServer := httpserver.New(
		handler,
		httpserver.Port(cfg.Host, cfg.Port),
		httpserver.TLS(cfg.TLS.Enabled, cfg.TLS.CertFile, cfg.TLS.KeyFile),
		httpserver.WriteTimeout(writeTimeout(cfg)),
		httpserver.Logger(log),
	)

	waitForShutdown(log, httpServer)

	if err := httpServer.Shutdown(); err != nil {
		log.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}

func setupHTTPHandler(cfg *config.Config, log logger.Interface, usecases *usecase.Usecases) *gin.Engine {
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := gin.New()

	defaultConfig := cors.DefaultConfig()
	defaultConfig.AllowOrigins = cfg.AllowedOrigins
	defaultConfig.AllowHeaders = cfg.AllowedHeaders
	defaultConfig.AllowCredentials = !allowsAnyOrigin(cfg.AllowedOrigins)

	handler.Use(cors.New(defaultConfig))
	httpapi.NewRouter(handler, log, *usecases, cfg)

	// Optionally enable pprof endpoints (e.g., for staging) via env ENABLE_PPROF=true
	if os.Getenv("ENABLE_PPROF") == "true" {
		ginpprof.Register(handler, "debug/pprof")
		log.Info("pprof enabled at /debug/pprof/")
	}

	return handler
}

// allowsAnyOrigin reports a wildcard origin, which cors rejects together
// with credentials.
func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}

	return false
}

func writeTimeout(cfg *config.Config) time.Duration {
	listing := upstream.Policy{
		Timeout:    max(cfg.Upstream.Timeout, cfg.Upstream.ListingTimeout),
		MaxRetries: cfg.Upstream.MaxRetries,
		WaitMin:    cfg.Upstream.RetryWaitMin,
		WaitMax:    cfg.Upstream.RetryWaitMax,
	}

	return listing.Ceiling() + writeSlack
}

func waitForShutdown(log logger.Interface, httpServer *httpserver.Server) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-httpServer.Notify():
		log.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}
}
