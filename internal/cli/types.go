package cli

// SimpleResult is the minimal success envelope
type SimpleResult struct {
	Success bool `json:"success"`
}

// UserView is an account as returned by the API
type UserView struct {
	Username       string   `json:"username"`
	ProfilePicture *string  `json:"profilePicture"`
	CreatedAt      string   `json:"createdAt"`
	GameData       GameData `json:"gameData"`
}

// GameData holds the account's game progress
type GameData struct {
	Coins        int      `json:"coins"`
	Achievements []string `json:"achievements"`
	OwnedTracks  []string `json:"ownedTracks"`
}

// LoginResult is the response for a successful login
type LoginResult struct {
	Success bool     `json:"success"`
	User    UserView `json:"user"`
	Token   string   `json:"token"`
}

// HealthResult is the response for the health endpoint
type HealthResult struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
