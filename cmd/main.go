package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/flight-interconnections-service/internal/app/config"
	"github.com/ijalalfrz/flight-interconnections-service/internal/app/dto"
	"github.com/ijalalfrz/flight-interconnections-service/internal/app/endpoints"
	"github.com/ijalalfrz/flight-interconnections-service/internal/app/service"
	"github.com/ijalalfrz/flight-interconnections-service/internal/app/transport"
	"github.com/ijalalfrz/flight-interconnections-service/internal/pkg/flightprovider"
	"github.com/ijalalfrz/flight-interconnections-service/internal/pkg/flightprovider/providerutils"
	"github.com/ijalalfrz/flight-interconnections-service/internal/pkg/flightprovider/ryanair"
	"github.com/ijalalfrz/flight-interconnections-service/internal/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// @title           Flight Interconnections Service API
// @version         0.0.1
// @description     flight-interconnections-service
// @host      localhost:8080
// @BasePath  /
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	provider := ryanair.NewProvider(flightprovider.FlightProviderConfig{
		BaseURL:  cfg.Provider.RyanairProvider.BaseURL,
		Timeout:  cfg.Provider.RyanairProvider.Timeout,
		Operator: cfg.Provider.RyanairProvider.RouteOperator,
		Limiter:  initRateLimiter(ctx, cfg),
	})

	return endpoints.Endpoints{
		InterconnectionEndpoint: makeInterconnectionEndpoint(provider, cfg),
	}
}

// shared limiter when redis is configured, in process otherwise
func initRateLimiter(ctx context.Context, cfg *config.Config) providerutils.RateLimiter {
	rps := cfg.Provider.RyanairProvider.RateLimitRPS

	if cfg.Redis.Addr == "" {
		slog.InfoContext(ctx, "redis not configured, using in process rate limiter", slog.Int("rps", rps))
		return providerutils.NewLocalLimiter(rps)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	return providerutils.NewRedisLimiter(redis_rate.NewLimiter(redisClient), rps)
}

func makeInterconnectionEndpoint(provider *ryanair.Provider, cfg *config.Config) endpoints.InterconnectionEndpoint {
	// service
	interconnectionService := service.NewInterconnectionService(provider, provider,
		cfg.Provider.ScheduleFetchTimeout, cfg.Provider.ScheduleFetchConcurrency)

	// endpoint
	return endpoints.MakeInterconnectionEndpoint(interconnectionService)
}
