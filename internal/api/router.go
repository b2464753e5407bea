package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dicehall/accounts/internal/api/handler"
	"github.com/dicehall/accounts/internal/api/middleware"
	"github.com/dicehall/accounts/internal/api/response"
	"github.com/dicehall/accounts/internal/dependencies/clock"
	"github.com/dicehall/accounts/internal/services/account"
	"github.com/dicehall/accounts/internal/token"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AccountService *account.Service
	TokenValidator *token.Issuer
	Clock          clock.Clock
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	accountHandler := handler.NewAccountHandler(cfg.AccountService)

	authMiddleware := middleware.Auth(cfg.TokenValidator)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Open routes
	api.HandleFunc("/register", accountHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/login", accountHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/health", healthHandler(cfg.Clock)).Methods(http.MethodGet)

	// Token-gated routes
	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware)
	protected.HandleFunc("/update-user", accountHandler.UpdateUser).Methods(http.MethodPost)
	protected.HandleFunc("/delete-user", accountHandler.DeleteUser).Methods(http.MethodPost)

	return r
}

func healthHandler(clk clock.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, response.HealthResponse{
			Status:    "ok",
			Timestamp: clk.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		})
	}
}
