package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"
)

var PortalConfig *Config

const (
	// MaxCacheTTL bounds the short class used for per-request aggregate queries.
	MaxCacheTTL = time.Hour
	// MaxStaticTTL bounds the long class used for institution-level binary resources.
	MaxStaticTTL = 24 * time.Hour
	// MaxUpstreamRetries -.
	MaxUpstreamRetries = 10
)

var (
	ErrNegativeCacheTTL        = errors.New("cache ttl cannot be negative")
	ErrNegativeStaticTTL       = errors.New("cache static_ttl cannot be negative")
	ErrCacheTTLTooLarge        = errors.New("cache ttl exceeds maximum allowed value of 1 hour")
	ErrStaticTTLTooLarge       = errors.New("cache static_ttl exceeds maximum allowed value of 24 hours")
	ErrUpstreamURLRequired     = errors.New("upstream url is required")
	ErrUpstreamTimeout         = errors.New("upstream timeouts must be positive")
	ErrUpstreamRetries         = errors.New("upstream max_retries must be between 0 and 10")
	ErrUpstreamRetryWaitBounds = errors.New("upstream retry_wait_min must not exceed retry_wait_max")
)

type (
	// Config -.
	Config struct {
		App      `yaml:"app"`
		HTTP     `yaml:"http"`
		Log      `yaml:"logger"`
		Upstream `yaml:"upstream"`
		Cache    `yaml:"cache"`
		Portal   `yaml:"portal"`
	}

	// App -.
	App struct {
		Name    string `env-required:"true" yaml:"name" env:"APP_NAME"`
		Repo    string `env-required:"true" yaml:"repo" env:"APP_REPO"`
		Version string `env-required:"true"`
	}

	// HTTP -.
	HTTP struct {
		Host           string   `env-required:"true" yaml:"host" env:"HTTP_HOST"`
		Port           string   `env-required:"true" yaml:"port" env:"HTTP_PORT"`
		AllowedOrigins []string `env-required:"true" yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS"`
		AllowedHeaders []string `env-required:"true" yaml:"allowed_headers" env:"HTTP_ALLOWED_HEADERS"`
		TLS            TLS      `yaml:"tls"`
	}

	// TLS -.
	TLS struct {
		Enabled  bool   `yaml:"enabled" env:"HTTP_TLS_ENABLED"`
		CertFile string `yaml:"certFile" env:"HTTP_TLS_CERT_FILE"`
		KeyFile  string `yaml:"keyFile" env:"HTTP_TLS_KEY_FILE"`
	}

	// Log -.
	Log struct {
		Level string `env-required:"true" yaml:"log_level"   env:"LOG_LEVEL"`
	}

	// Upstream describes the academic-records API and its retry profiles.
	// Timeout applies to small payloads (images, logos); ListingTimeout to
	// the notes and groups listings.
	Upstream struct {
		BaseURL        string        `yaml:"url" env:"UPSTREAM_URL"`
		Timeout        time.Duration `yaml:"timeout" env:"UPSTREAM_TIMEOUT"`
		ListingTimeout time.Duration `yaml:"listing_timeout" env:"UPSTREAM_LISTING_TIMEOUT"`
		MaxRetries     int           `yaml:"max_retries" env:"UPSTREAM_MAX_RETRIES"`
		RetryWaitMin   time.Duration `yaml:"retry_wait_min" env:"UPSTREAM_RETRY_WAIT_MIN"`
		RetryWaitMax   time.Duration `yaml:"retry_wait_max" env:"UPSTREAM_RETRY_WAIT_MAX"`
	}

	// Cache holds the two TTL classes. Zero disables a class.
	Cache struct {
		TTL       time.Duration `yaml:"ttl" env:"CACHE_TTL"`
		StaticTTL time.Duration `yaml:"static_ttl" env:"CACHE_STATIC_TTL"`
	}

	// Portal -.
	Portal struct {
		CurrentYear  string   `yaml:"current_year" env:"CURRENT_YEAR"`
		EntryRoute   string   `yaml:"entry_route" env:"PORTAL_ENTRY_ROUTE"`
		LandingRoute string   `yaml:"landing_route" env:"PORTAL_LANDING_ROUTE"`
		TeacherRoute string   `yaml:"teacher_route" env:"PORTAL_TEACHER_ROUTE"`
		AdminRoute   string   `yaml:"admin_route" env:"PORTAL_ADMIN_ROUTE"`
		PublicPaths  []string `yaml:"public_paths" env:"PORTAL_PUBLIC_PATHS"`
		UIURL        string   `yaml:"ui_url" env:"PORTAL_UI_URL"`
	}
)

// defaultConfig constructs the in-memory default configuration.
func defaultConfig() *Config {
	return &Config{
		App: App{
			Name:    "portal",
			Repo:    "studentportal/portal",
			Version: "DEVELOPMENT",
		},
		HTTP: HTTP{
			Host:           "localhost",
			Port:           "8080",
			AllowedOrigins: []string{"*"},
			AllowedHeaders: []string{"*"},
			TLS: TLS{
				Enabled:  false,
				CertFile: "",
				KeyFile:  "",
			},
		},
		Log: Log{
			Level: "info",
		},
		Upstream: Upstream{
			BaseURL:        "http://localhost:8090/api",
			Timeout:        10 * time.Second,
			ListingTimeout: 100 * time.Second,
			MaxRetries:     2,
			RetryWaitMin:   500 * time.Millisecond,
			RetryWaitMax:   4 * time.Second,
		},
		Cache: Cache{
			TTL:       5 * time.Minute,
			StaticTTL: 6 * time.Hour,
		},
		Portal: Portal{
			CurrentYear:  "",
			EntryRoute:   "/",
			LandingRoute: "/dashboard",
			TeacherRoute: "/teacher/dashboard",
			AdminRoute:   "/admin/dashboard",
			PublicPaths:  []string{"/healthz", "/metrics", "/version", "/static/", "/favicon.ico"},
			UIURL:        "",
		},
	}
}

// resolveConfigPath determines the effective config file path based on a flag value or default location.
func resolveConfigPath(configPathFlag string) (string, error) {
	if configPathFlag != "" {
		return configPathFlag, nil
	}

	ex, err := os.Executable()
	if err != nil {
		return "", err
	}

	exPath := filepath.Dir(ex)

	return filepath.Join(exPath, "config", "config.yml"), nil
}

// readOrInitConfig attempts to read the config file; if it doesn't exist, writes the provided cfg to disk.
func readOrInitConfig(configPath string, cfg *Config) error {
	err := cleanenv.ReadConfig(configPath, cfg)
	if err == nil {
		return nil
	}

	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		configDir := filepath.Dir(configPath)
		if mkErr := os.MkdirAll(configDir, os.ModePerm); mkErr != nil {
			return mkErr
		}

		file, cErr := os.Create(configPath)
		if cErr != nil {
			return cErr
		}
		defer file.Close()

		encoder := yaml.NewEncoder(file)
		defer encoder.Close()

		return encoder.Encode(cfg)
	}

	return err
}

// ValidateCacheConfig checks both TTL classes.
func (c *Config) ValidateCacheConfig() error {
	if c.Cache.TTL < 0 {
		return ErrNegativeCacheTTL
	}

	if c.Cache.StaticTTL < 0 {
		return ErrNegativeStaticTTL
	}

	if c.Cache.TTL > MaxCacheTTL {
		return ErrCacheTTLTooLarge
	}

	if c.Cache.StaticTTL > MaxStaticTTL {
		return ErrStaticTTLTooLarge
	}

	return nil
}

// ValidateUpstreamConfig -.
func (c *Config) ValidateUpstreamConfig() error {
	if c.Upstream.BaseURL == "" {
		return ErrUpstreamURLRequired
	}

	if c.Upstream.Timeout <= 0 || c.Upstream.ListingTimeout <= 0 {
		return ErrUpstreamTimeout
	}

	if c.Upstream.MaxRetries < 0 || c.Upstream.MaxRetries > MaxUpstreamRetries {
		return ErrUpstreamRetries
	}

	if c.Upstream.RetryWaitMin > c.Upstream.RetryWaitMax {
		return ErrUpstreamRetryWaitBounds
	}

	return nil
}

// NewConfig returns app config.
func NewConfig() (*Config, error) {
	PortalConfig = defaultConfig()

	var configPathFlag string
	if flag.Lookup("config") == nil {
		flag.StringVar(&configPathFlag, "config", "", "path to config file")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	configPath, err := resolveConfigPath(configPathFlag)
	if err != nil {
		return nil, err
	}

	if err := readOrInitConfig(configPath, PortalConfig); err != nil {
		return nil, err
	}

	if err := cleanenv.ReadEnv(PortalConfig); err != nil {
		return nil, err
	}

	if err := PortalConfig.ValidateCacheConfig(); err != nil {
		return nil, err
	}

	if err := PortalConfig.ValidateUpstreamConfig(); err != nil {
		return nil, err
	}

	return PortalConfig, nil
}
