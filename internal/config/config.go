package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Auth     AuthConfig     `yaml:"auth"`
	Retell   RetellConfig   `yaml:"retell"`
	Sync     SyncConfig     `yaml:"sync"`
	Trash    TrashConfig    `yaml:"trash"`
	Preview  PreviewConfig  `yaml:"preview"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	ExposedHeaders   string `yaml:"exposed_headers"   env:"CORS_EXPOSED_HEADERS"   env-default:"Content-Disposition,X-Request-Id,X-Total-Count"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"5m"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimit       int           `yaml:"rate_limit"       env:"SERVER_RATE_LIMIT"       env-default:"10"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds operator token settings.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"callhistory"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"720h"`
}

// RetellConfig holds the call-analytics API client settings.
type RetellConfig struct {
	BaseURL string        `yaml:"base_url" env:"RETELL_BASE_URL" env-default:"https://api.retellai.com"`
	APIKey  string        `yaml:"api_key"  env:"RETELL_API_KEY"`
	Timeout time.Duration `yaml:"timeout"  env:"RETELL_TIMEOUT"  env-default:"30s"`
}

// SyncConfig controls the scheduled call sync.
type SyncConfig struct {
	Enabled  bool          `yaml:"enabled"  env:"SYNC_ENABLED"  env-default:"true"`
	Schedule string        `yaml:"schedule" env:"SYNC_SCHEDULE" env-default:"*/30 * * * *"`
	Timeout  time.Duration `yaml:"timeout"  env:"SYNC_TIMEOUT"  env-default:"20m"`
}

// TrashConfig controls retention of deleted calls.
type TrashConfig struct {
	RetentionDays int    `yaml:"retention_days" env:"TRASH_RETENTION_DAYS" env-default:"7"`
	SweepSchedule string `yaml:"sweep_schedule" env:"TRASH_SWEEP_SCHEDULE" env-default:"0 3 * * *"`
}

// Retention returns the retention window as a duration.
func (c TrashConfig) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

// PreviewConfig holds the upload preview limits.
type PreviewConfig struct {
	MaxRows        int   `yaml:"max_rows"         env:"PREVIEW_MAX_ROWS"         env-default:"20"`
	MaxCols        int   `yaml:"max_cols"         env:"PREVIEW_MAX_COLS"         env-default:"15"`
	MaxUploadBytes int64 `yaml:"max_upload_bytes" env:"PREVIEW_MAX_UPLOAD_BYTES" env-default:"10485760"`
	LegacyXLS      bool  `yaml:"legacy_xls"       env:"PREVIEW_LEGACY_XLS"       env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
