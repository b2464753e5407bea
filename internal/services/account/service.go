package account

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/dicehall/accounts/internal/dependencies/clock"
	"github.com/dicehall/accounts/internal/model"
	"github.com/dicehall/accounts/internal/password"
	"github.com/dicehall/accounts/internal/storage"
	"github.com/dicehall/accounts/internal/token"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

// Service implements the account use cases: register, login,
// profile update, and deletion. Validation lives here so every
// caller gets the same failure classification.
type Service struct {
	storage storage.Storage
	hasher  *password.Hasher
	tokens  *token.Issuer
	clock   clock.Clock
	logger  *slog.Logger
}

// LoginResult is a successful login: the stored user plus a fresh
// session token snapshotting the user's claims at this moment.
type LoginResult struct {
	User  *model.User
	Token string
}

// New creates a new account service
func New(storage storage.Storage, hasher *password.Hasher, tokens *token.Issuer, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		hasher:  hasher,
		tokens:  tokens,
		clock:   clk,
		logger:  logger,
	}
}

// Register creates a new account with a hashed password and empty
// game data. The profile picture is optional.
func (s *Service) Register(ctx context.Context, username, pass, profilePicture string) error {
	if username == "" || pass == "" {
		return model.ErrMissingCredentials
	}
	if utf8.RuneCountInString(username) < minUsernameLength {
		return model.ErrUsernameTooShort
	}
	if utf8.RuneCountInString(pass) < minPasswordLength {
		return model.ErrPasswordTooShort
	}

	hash, err := s.hasher.Hash(pass)
	if err != nil {
		s.logger.Error("password hashing failed", slog.String("username", username), slog.String("error", err.Error()))
		return fmt.Errorf("register %q: %w", username, err)
	}

	user := &model.User{
		Username:       username,
		PasswordHash:   hash,
		ProfilePicture: profilePicture,
		CreatedAt:      s.clock.Now(),
		GameData:       model.NewGameData(),
	}

	// CreateUser is atomic, so concurrent registrations for the same
	// username race here and exactly one wins
	return s.storage.CreateUser(ctx, user)
}

// Login verifies credentials and issues a session token.
func (s *Service) Login(ctx context.Context, username, pass string) (*LoginResult, error) {
	if username == "" || pass == "" {
		return nil, model.ErrMissingCredentials
	}

	user, err := s.storage.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}

	if !s.hasher.Verify(pass, user.PasswordHash) {
		return nil, model.ErrWrongPassword
	}

	tok, err := s.tokens.Issue(user.Username, user.ProfilePicture)
	if err != nil {
		s.logger.Error("token issuance failed", slog.String("username", username), slog.String("error", err.Error()))
		return nil, fmt.Errorf("login %q: %w", username, err)
	}

	return &LoginResult{User: user, Token: tok}, nil
}

// UpdateProfile overwrites the profile picture for an authenticated
// user. An empty picture is a no-op, not an erasure. Returns
// model.ErrUserNotFound if the account was deleted in the meantime.
func (s *Service) UpdateProfile(ctx context.Context, username, profilePicture string) error {
	return s.storage.UpdateUser(ctx, username, func(u *model.User) error {
		if profilePicture != "" {
			u.ProfilePicture = profilePicture
		}
		return nil
	})
}

// DeleteAccount removes an account. Tokens already issued for it stay
// structurally valid until they expire; see the token package docs.
func (s *Service) DeleteAccount(ctx context.Context, username string) error {
	return s.storage.DeleteUser(ctx, username)
}
