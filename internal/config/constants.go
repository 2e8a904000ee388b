package config

import "time"

// Environment variable names
const (
	EnvAppEnv          = "APP_ENV"
	EnvPort            = "PORT"
	EnvBackendURL      = "BACKEND_URL"
	EnvBackendTimeout  = "BACKEND_TIMEOUT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvServiceName     = "SERVICE_NAME"
	EnvVersion         = "VERSION"
	EnvContentFile     = "CONTENT_FILE"
	EnvAdminCell       = "ADMIN_CELL"
	EnvCellCacheTTL    = "CELL_CACHE_TTL"
	EnvCellCacheSize   = "CELL_CACHE_SIZE"
	EnvCSRFKey         = "CSRF_KEY"
	EnvTimezone        = "TIMEZONE"
	EnvSecureCookies   = "SECURE_COOKIES"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
	EnvTrustedProxies  = "TRUSTED_PROXIES"
)

// Environments
const (
	EnvironmentDev  = "dev"
	EnvironmentProd = "prod"
)

// Defaults
const (
	DefaultPort            = 8000
	DefaultBackendTimeout  = 10 * time.Second
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "" // text in dev, json in prod
	DefaultServiceName     = "grapeweb"
	DefaultVersion         = "dev"
	DefaultAdminCell       = "관리자"
	DefaultCellCacheTTL    = 5 * time.Minute
	DefaultCellCacheSize   = 16
	DefaultTimezone        = "Asia/Seoul"
	DefaultShutdownTimeout = 10 * time.Second
)

// CSRFKeyLength is the key size gorilla/csrf requires
const CSRFKeyLength = 32
