package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	chatdomain "github.com/memetrics/memetrics-bfa-go/internal/chat/domain"
	chatinfra "github.com/memetrics/memetrics-bfa-go/internal/chat/infra"
	chatport "github.com/memetrics/memetrics-bfa-go/internal/chat/port"
	chatservice "github.com/memetrics/memetrics-bfa-go/internal/chat/service"
	"github.com/memetrics/memetrics-bfa-go/internal/config"
	"github.com/memetrics/memetrics-bfa-go/internal/handler"
	"github.com/memetrics/memetrics-bfa-go/internal/infra/cache"
	"github.com/memetrics/memetrics-bfa-go/internal/infra/memory"
	"github.com/memetrics/memetrics-bfa-go/internal/infra/observability"
	"github.com/memetrics/memetrics-bfa-go/internal/infra/resilience"
	"github.com/memetrics/memetrics-bfa-go/internal/port"
	"github.com/memetrics/memetrics-bfa-go/internal/service"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

func main() {
	// --- Load .env file (for local development) ---
	envFile, envErr := config.LoadDotEnv()

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	if envErr == nil {
		logger.Info("loaded .env", zap.String("path", envFile))
	}

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.String("app_name", cfg.AppName),
		zap.String("provider", cfg.Provider),
		zap.Bool("remote_enabled", cfg.RemoteEnabled()),
		zap.Duration("mitra_timeout", cfg.MitraTimeout),
		zap.Duration("http_timeout", cfg.HTTPTimeout),
		zap.Duration("cache_ttl", cfg.CacheTTL),
		zap.Int("max_retries", cfg.MaxRetries),
		zap.Int("max_concurrency", cfg.MaxConcurrency),
		zap.Bool("redis", cfg.RedisAddr != ""),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "memetrics-bfa")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- State ---
	store := memory.NewStore(memory.DefaultSequences, nil)

	healthChecks := []handler.HealthCheck{
		{Name: "state-store", Check: func(ctx context.Context) error {
			_, err := store.Snapshot(ctx)
			return err
		}},
	}

	// --- Cache ---
	var replyCache port.Cache[chatdomain.RemoteReply]
	switch {
	case !cfg.ReplyCacheEnabled():
		logger.Info("mitra reply cache disabled")
	case cfg.RedisAddr != "":
		redisCache := cache.NewRedis[chatdomain.RemoteReply](
			cache.NewRedisClient(cache.RedisOptions{
				Addr:     cfg.RedisAddr,
				Password: cfg.RedisPassword,
				DB:       cfg.RedisDB,
			}),
			"mitra:reply:", cfg.CacheTTL, logger,
		)
		defer redisCache.Close()
		replyCache = redisCache
		healthChecks = append(healthChecks, handler.HealthCheck{Name: "redis", Check: redisCache.Ping})
		logger.Info("mitra reply cache: redis", zap.String("addr", cfg.RedisAddr))
	default:
		memCache := cache.New[chatdomain.RemoteReply](cfg.CacheTTL)
		defer memCache.Close()
		replyCache = memCache
	}

	// --- Resilience ---
	resilienceCfg := resilience.Config{
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.InitialBackoff,
		MaxConcurrency: cfg.MaxConcurrency,
	}
	cb := resilience.NewCircuitBreaker("mitra-"+cfg.Provider, logger)
	bulkhead := resilience.NewBulkhead(cfg.MaxConcurrency)

	// --- Remote replier ---
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	remote := newReplier(cfg, httpClient, cb, resilienceCfg, logger)

	// --- Services ---
	chatSvc := chatservice.NewChatService(remote, replyCache, bulkhead, metrics,
		chatservice.Config{RemoteEnabled: cfg.RemoteEnabled(), Timeout: cfg.MitraTimeout},
		logger,
	)

	svcs := handler.Services{
		Store:   store,
		Login:   service.NewLoginService(store, logger),
		Feed:    service.NewFeedService(store, logger),
		Profile: service.NewProfileService(store, metrics, logger),
		Content: service.NewContentService(store),
		Chat:    chatSvc,
	}

	// --- Router ---
	router := handler.NewRouter(svcs, handler.Options{
		CORSOrigins:  cfg.CORSOrigins,
		FrontendDir:  cfg.FrontendDir,
		HealthChecks: healthChecks,
	}, metrics, logger)

	// --- Server ---
	// WriteTimeout leaves room for the Mitra remote call.
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.MitraTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}

// newReplier builds the client for the configured provider. A provider that
// cannot be built is replaced by one that always reports "not configured".
func newReplier(cfg *config.Config, httpClient *http.Client, cb *gobreaker.CircuitBreaker, retry resilience.Config, logger *zap.Logger) chatport.RemoteReplier {
	if cfg.Provider == config.ProviderGemini {
		r, err := chatinfra.NewGeminiReplier(context.Background(), chatinfra.GeminiConfig{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.GeminiModel,
		}, cb, retry)
		if err != nil {
			logger.Warn("gemini client unavailable, using rule engine only", zap.Error(err))
			return chatinfra.UnavailableReplier{Service: chatinfra.ServiceGemini, Reason: err.Error()}
		}
		return r
	}

	return chatinfra.NewOpenAIReplier(httpClient, chatinfra.OpenAIConfig{
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
		BaseURL: cfg.OpenAIBaseURL,
	}, cb, retry)
}
