package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	Provider Provider   `mapstructure:",squash"`
}

type HTTP struct {
	Port               int           `mapstructure:"HTTP_PORT"`
	Timeout            time.Duration `mapstructure:"HTTP_TIMEOUT"`
	CORSAllowedOrigins []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

// Redis backs the shared upstream rate limiter. Leave REDIS_ADDR empty to
// limit in process instead.
type Redis struct {
	Addr     string `mapstructure:"REDIS_ADDR"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

type RyanairProvider struct {
	BaseURL       string        `mapstructure:"RYANAIR_API_BASE_URL"`
	Timeout       time.Duration `mapstructure:"RYANAIR_TIMEOUT"`
	RateLimitRPS  int           `mapstructure:"RYANAIR_RATE_LIMIT"`
	RouteOperator string        `mapstructure:"RYANAIR_ROUTE_OPERATOR"`
}

type Provider struct {
	RyanairProvider          RyanairProvider `mapstructure:",squash"`
	ScheduleFetchTimeout     time.Duration   `mapstructure:"SCHEDULE_FETCH_TIMEOUT"`
	ScheduleFetchConcurrency int             `mapstructure:"SCHEDULE_FETCH_CONCURRENCY"`
}
