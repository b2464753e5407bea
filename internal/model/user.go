package model

import "time"

// User is a registered account, keyed by username.
// The JSON tags are the storage representation; API responses use
// their own view types and never include the password hash.
type User struct {
	Username       string    `json:"username"`
	PasswordHash   string    `json:"passwordHash"` // bcrypt hash
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	GameData       GameData  `json:"gameData"`
}

// GameData holds per-account game progress. It is created empty at
// registration and persists with the account.
type GameData struct {
	Coins        int      `json:"coins"`
	Achievements []string `json:"achievements"`
	OwnedTracks  []string `json:"ownedTracks"`
}

// NewGameData returns the zero-value game data for a fresh account.
// Slices are non-nil so they serialize as empty arrays, not null.
func NewGameData() GameData {
	return GameData{
		Achievements: []string{},
		OwnedTracks:  []string{},
	}
}
