package factory

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dicehall/accounts/internal/dependencies/mocks"
	"github.com/dicehall/accounts/internal/storage/memory"
	"github.com/dicehall/accounts/internal/testutil"
	"github.com/dicehall/accounts/internal/token"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// MockClock controls time, including token expiry checks
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	tokenCfg := token.Config{Secret: "test-secret"}

	app := newWithDependencies(store, mockClock, tokenCfg, bcrypt.MinCost, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
