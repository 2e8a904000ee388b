package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Environment     string // "dev" or "prod"
	Port            int
	BackendURL      string
	BackendTimeout  time.Duration
	LogLevel        string
	LogFormat       string
	ServiceName     string
	Version         string
	ContentFile     string // optional YAML overriding the built-in catalog
	AdminCell       string // hidden from the other-cell picker
	CellCacheTTL    time.Duration
	CellCacheSize   int
	CSRFKey         string // 32 bytes; empty disables CSRF protection
	Timezone        string
	SecureCookies   bool
	ShutdownTimeout time.Duration
	TrustedProxies  []string // proxies whose X-Forwarded-For is believed

	location *time.Location
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:     strings.ToLower(getEnv(EnvAppEnv, "")),
		BackendURL:      strings.TrimRight(getEnv(EnvBackendURL, ""), "/"),
		BackendTimeout:  getEnvAsDuration(EnvBackendTimeout, DefaultBackendTimeout),
		LogLevel:        getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:       getEnv(EnvLogFormat, DefaultLogFormat),
		ServiceName:     getEnv(EnvServiceName, DefaultServiceName),
		Version:         getEnv(EnvVersion, DefaultVersion),
		ContentFile:     getEnv(EnvContentFile, ""),
		AdminCell:       getEnv(EnvAdminCell, DefaultAdminCell),
		CellCacheTTL:    getEnvAsDuration(EnvCellCacheTTL, DefaultCellCacheTTL),
		CellCacheSize:   getEnvAsInt(EnvCellCacheSize, DefaultCellCacheSize),
		CSRFKey:         getEnv(EnvCSRFKey, ""),
		Timezone:        getEnv(EnvTimezone, DefaultTimezone),
		SecureCookies:   getEnvAsBool(EnvSecureCookies, false),
		ShutdownTimeout: getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
		TrustedProxies:  getEnvAsList(EnvTrustedProxies),
	}

	portStr := getEnv(EnvPort, strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.Environment != EnvironmentDev && cfg.Environment != EnvironmentProd {
		return nil, fmt.Errorf("APP_ENV must be %q or %q, got %q", EnvironmentDev, EnvironmentProd, cfg.Environment)
	}

	if cfg.BackendURL == "" {
		return nil, fmt.Errorf("BACKEND_URL environment variable must be set")
	}
	if u, err := url.Parse(cfg.BackendURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid BACKEND_URL value: %q", cfg.BackendURL)
	}

	if cfg.CSRFKey != "" && len(cfg.CSRFKey) != CSRFKeyLength {
		return nil, fmt.Errorf("CSRF_KEY must be exactly %d bytes, got %d", CSRFKeyLength, len(cfg.CSRFKey))
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE value: %w", err)
	}
	cfg.location = loc

	return cfg, nil
}

// IsDev reports whether dev-only features such as the test mission are enabled
func (c *Config) IsDev() bool {
	return c.Environment == EnvironmentDev
}

// Location returns the timezone dates are displayed in
func (c *Config) Location() *time.Location {
	if c.location == nil {
		if loc, err := time.LoadLocation(c.Timezone); err == nil {
			return loc
		}
		return time.FixedZone("KST", 9*60*60)
	}
	return c.location
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a duration variable, falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool parses a boolean variable, falling back to the default when unset or invalid
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
