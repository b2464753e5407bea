package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dicehall/accounts/internal/api"
	"github.com/dicehall/accounts/internal/factory"
	redisstorage "github.com/dicehall/accounts/internal/storage/redis"
	"github.com/dicehall/accounts/internal/token"
)

// serverEnv holds raw environment configuration
type serverEnv struct {
	Port          int           `env:"ACCOUNTS_PORT" envDefault:"3000"`
	JWTSecret     string        `env:"ACCOUNTS_JWT_SECRET" envDefault:"default-secret-key"`
	TokenValidity time.Duration `env:"ACCOUNTS_TOKEN_VALIDITY" envDefault:"168h"`
	BcryptCost    int           `env:"ACCOUNTS_BCRYPT_COST" envDefault:"10"`
	StorageType   string        `env:"ACCOUNTS_STORAGE_TYPE" envDefault:"memory"`
	RedisURL      string        `env:"ACCOUNTS_REDIS_URL"`
	StaticDir     string        `env:"ACCOUNTS_STATIC_DIR" envDefault:"web/static"`
}

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var cfg serverEnv
	if err := env.Parse(&cfg); err != nil {
		logger.Error("failed to parse environment", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.JWTSecret == "default-secret-key" {
		logger.Warn("ACCOUNTS_JWT_SECRET not set, using insecure default")
	}

	factoryCfg := factory.Config{
		TokenConfig: token.Config{
			Secret:   cfg.JWTSecret,
			Validity: cfg.TokenValidity,
		},
		BcryptCost:  cfg.BcryptCost,
		Logger:      logger,
		StorageType: cfg.StorageType,
	}

	if cfg.StorageType == factory.StorageTypeRedis {
		if cfg.RedisURL == "" {
			logger.Error("ACCOUNTS_REDIS_URL required when ACCOUNTS_STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		AccountService: app.AccountService,
		TokenValidator: app.TokenIssuer,
		Clock:          app.Clock,
	})

	// Serve the frontend beside the API when the static dir exists
	root := http.NewServeMux()
	root.Handle("/api/", apiRouter)
	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		root.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))
		logger.Info("serving static files", slog.String("dir", cfg.StaticDir))
	}

	serverConfig := api.DefaultServerConfig()
	serverConfig.Port = cfg.Port
	server := api.NewServer(root, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
