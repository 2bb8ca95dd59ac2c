package config

import (
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var defaults = map[string]any{
	"LOG_LEVEL":                  "info",
	"HTTP_PORT":                  8080,
	"HTTP_TIMEOUT":               30 * time.Second,
	"CORS_ALLOWED_ORIGINS":       []string{"http://localhost:8444"},
	"RYANAIR_API_BASE_URL":       "https://api.ryanair.com",
	"RYANAIR_TIMEOUT":            5 * time.Second,
	"RYANAIR_RATE_LIMIT":         20,
	"SCHEDULE_FETCH_TIMEOUT":     5 * time.Second,
	"SCHEDULE_FETCH_CONCURRENCY": 8,
}

// MustInitConfig initializes configuration from .env file or environment variables.
// Values missing from both fall back to defaults.
func MustInitConfig(configFile string) Config {
	var (
		vpr = viper.New()
		cfg Config
	)

	for key, value := range defaults {
		vpr.SetDefault(key, value)
	}

	vpr.AutomaticEnv()

	vpr.SetConfigFile(configFile)
	vpr.SetConfigType("env")

	if err := vpr.ReadInConfig(); err != nil {
		slog.Warn("config file not found or cannot be read, using environment variables",
			slog.String("file", configFile),
			slog.String("error", err.Error()))
	} else {
		slog.Info("config file loaded successfully", slog.String("file", configFile))
	}

	bindEnvFromType(vpr, reflect.TypeOf(Config{}))

	if err := vpr.Unmarshal(&cfg); err != nil {
		slog.Error("cannot unmarshal config", slog.String("error", err.Error()))
		panic(err)
	}

	return cfg
}

// bindEnvFromType binds every mapstructure tag of t to its environment variable,
// descending into squashed structs.
func bindEnvFromType(vpr *viper.Viper, t reflect.Type) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name, opts, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")

		if strings.Contains(opts, "squash") && field.Type.Kind() == reflect.Struct {
			bindEnvFromType(vpr, field.Type)
			continue
		}

		if name == "" || name == "-" {
			continue
		}

		_ = vpr.BindEnv(name)
	}
}
