package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/dicehall/accounts/internal/dependencies/clock"
	"github.com/dicehall/accounts/internal/password"
	"github.com/dicehall/accounts/internal/services/account"
	"github.com/dicehall/accounts/internal/storage"
	"github.com/dicehall/accounts/internal/storage/memory"
	redisstorage "github.com/dicehall/accounts/internal/storage/redis"
	"github.com/dicehall/accounts/internal/token"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Storage storage.Storage
	Clock   clock.Clock

	Hasher         *password.Hasher
	TokenIssuer    *token.Issuer
	AccountService *account.Service
}

// Config holds configuration for the application factory
type Config struct {
	// TokenConfig holds the signing secret and validity window.
	// A zero Validity defaults to token.DefaultValidity.
	TokenConfig token.Config
	// BcryptCost is the password hashing work factor (0 = default)
	BcryptCost int
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, clock.New(), cfg.TokenConfig, cfg.BcryptCost, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, tokenCfg token.Config, bcryptCost int, logger *slog.Logger) *App {
	hasher := password.NewHasher(bcryptCost)
	issuer := token.NewIssuer(tokenCfg, clk)
	accountService := account.New(store, hasher, issuer, clk, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Hasher:         hasher,
		TokenIssuer:    issuer,
		AccountService: accountService,
	}
}
