package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/medware/medassist/internal/auth"
	"github.com/medware/medassist/internal/cache"
	"github.com/medware/medassist/internal/chat"
	"github.com/medware/medassist/internal/config"
	"github.com/medware/medassist/internal/handlers"
	"github.com/medware/medassist/internal/logging"
	"github.com/medware/medassist/internal/notify"
	"github.com/medware/medassist/internal/repository"
	"github.com/medware/medassist/internal/risk"
	"github.com/medware/medassist/internal/voice"
)

func main() {
	gin.SetMode(getEnv("GIN_MODE", "release"))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, "medassist")
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	server := &handlers.Server{
		Log:    logger,
		Auth:   auth.NewService(cfg.JWTSecret, cfg.AccessTokenTTL),
		Engine: risk.NewEngine(cfg.Risk, logger),
		Hub:    notify.NewHub(logger),
		Mailer: notify.NewMailer(cfg.SMTPHost, fmt.Sprint(cfg.SMTPPort), cfg.SMTPUser, cfg.SMTPPassword, cfg.EmailFrom, logger),
	}

	var llm chat.Completer
	if cfg.LLMAPIKey != "" {
		llm = chat.NewOpenAIClient(cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.LLMModel)
	}
	server.Chat = chat.NewService(llm, logger)

	if cfg.VoiceServiceURL != "" {
		server.Voice = voice.NewClient(cfg.VoiceServiceURL, cfg.VoiceAPIKey, logger)
	}

	if cfg.EnableDB {
		pool, err := connectDB(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("database connection failed", zap.Error(err))
		}
		defer pool.Close()

		if err := repository.EnsureSchema(ctx, pool); err != nil {
			logger.Fatal("schema init failed", zap.Error(err))
		}

		server.DB = pool
		server.Users = repository.NewUsers(pool)
		server.Predictions = repository.NewPredictions(pool)
		server.Chats = repository.NewChatHistory(pool)
	} else {
		logger.Warn("running without a database, auth and history endpoints are disabled")
	}

	if cfg.EnableRedis {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unavailable, chat context disabled", zap.Error(err))
		} else {
			server.ChatCtx = cache.NewChatContext(rdb, logger)
			server.Redis = redisPinger{rdb}
			defer func() { _ = rdb.Close() }()
		}
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	logger.Info("server listening", zap.String("port", cfg.Port))
	waitForShutdown(httpServer, logger)
}

// redisPinger adapts the redis client's Ping to the readiness interface.
type redisPinger struct {
	rdb *redis.Client
}

func (r redisPinger) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

func connectDB(ctx context.Context, url string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return pool, nil
}

func waitForShutdown(server *http.Server, logger *zap.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
