package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Auth         AuthConfig         `yaml:"auth"`
	Log          LogConfig          `yaml:"log"`
	CORS         CORSConfig         `yaml:"cors"`
	Mail         MailConfig         `yaml:"mail"`
	Notification NotificationConfig `yaml:"notification"`
	Storage      StorageConfig      `yaml:"storage"`
	Scheduler    SchedulerConfig    `yaml:"scheduler"`
	Redis        RedisConfig        `yaml:"redis"`
	Metrics      MetricsConfig      `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"15s"`
	// UploadRateLimit caps upload and import requests per client per minute.
	UploadRateLimit int `yaml:"upload_rate_limit" env:"SERVER_UPLOAD_RATE_LIMIT" env-default:"30"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds bearer token settings. Tokens are issued out of band
// (studioctl issue-token) and validated on every request.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"studio"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"720h"`
	AllowAnonymous bool          `yaml:"allow_anonymous"  env:"AUTH_ALLOW_ANONYMOUS"  env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Mail transports.
const (
	MailTransportSMTP = "smtp"
	MailTransportSES  = "ses"
	MailTransportLog  = "log"
)

// MailConfig selects and configures the outbound mail transport.
type MailConfig struct {
	Transport    string        `yaml:"transport"     env:"MAIL_TRANSPORT"     env-default:"log"`
	From         string        `yaml:"from"          env:"MAIL_FROM"          env-default:"noreply@studio.local"`
	Timeout      time.Duration `yaml:"timeout"       env:"MAIL_TIMEOUT"       env-default:"30s"`
	SMTPHost     string        `yaml:"smtp_host"     env:"MAIL_SMTP_HOST"`
	SMTPPort     int           `yaml:"smtp_port"     env:"MAIL_SMTP_PORT"     env-default:"587"`
	SMTPUsername string        `yaml:"smtp_username" env:"MAIL_SMTP_USERNAME"`
	SMTPPassword string        `yaml:"smtp_password" env:"MAIL_SMTP_PASSWORD"`
	SMTPUseTLS   bool          `yaml:"smtp_use_tls"  env:"MAIL_SMTP_USE_TLS"  env-default:"true"`
	SESRegion    string        `yaml:"ses_region"    env:"MAIL_SES_REGION"`
}

// NotificationConfig tunes the change-notification pipeline.
type NotificationConfig struct {
	Enabled     bool          `yaml:"enabled"      env:"NOTIFY_ENABLED"      env-default:"true"`
	StudioName  string        `yaml:"studio_name"  env:"NOTIFY_STUDIO_NAME"  env-default:"爱特工作室"`
	Workers     int           `yaml:"workers"      env:"NOTIFY_WORKERS"      env-default:"4"`
	MaxPending  int           `yaml:"max_pending"  env:"NOTIFY_MAX_PENDING"  env-default:"256"`
	TaskTimeout time.Duration `yaml:"task_timeout" env:"NOTIFY_TASK_TIMEOUT" env-default:"2m"`
}

// StorageConfig holds uploaded-file settings.
type StorageConfig struct {
	MediaRoot   string `yaml:"media_root"    env:"STORAGE_MEDIA_ROOT"    env-default:"./media"`
	MaxUploadMB int64  `yaml:"max_upload_mb" env:"STORAGE_MAX_UPLOAD_MB" env-default:"20"`
}

// SchedulerConfig holds the in-process maintenance scheduler settings.
type SchedulerConfig struct {
	Enabled          bool          `yaml:"enabled"             env:"SCHEDULER_ENABLED"             env-default:"true"`
	Timezone         string        `yaml:"timezone"            env:"SCHEDULER_TIMEZONE"            env-default:"Asia/Shanghai"`
	CheckExpiredCron string        `yaml:"check_expired_cron"  env:"SCHEDULER_CHECK_EXPIRED_CRON"  env-default:"0 8 * * *"`
	PruneJobRunsCron string        `yaml:"prune_job_runs_cron" env:"SCHEDULER_PRUNE_JOB_RUNS_CRON" env-default:"0 1 * * 1"`
	JobRunRetention  time.Duration `yaml:"job_run_retention"   env:"SCHEDULER_JOB_RUN_RETENTION"   env-default:"168h"`
	LockTTL          time.Duration `yaml:"lock_ttl"            env:"SCHEDULER_LOCK_TTL"            env-default:"10m"`
}

// RedisConfig enables the scheduler's cross-replica lock. Empty Addr disables it.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// MetricsConfig controls the prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// Addr is the listen address.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Location resolves the scheduler timezone. Validate guarantees it parses.
func (c SchedulerConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Origins splits the comma-separated allowed origins.
func (c CORSConfig) Origins() []string {
	return splitList(c.AllowedOrigins)
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
