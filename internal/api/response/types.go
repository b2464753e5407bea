package response

import (
	"time"

	"github.com/dicehall/accounts/internal/model"
)

// Response is the minimal success envelope
type Response struct {
	Success bool `json:"success"`
}

// OK returns a success envelope with no payload
func OK() Response {
	return Response{Success: true}
}

// User is the outward view of an account. It never carries the
// password hash.
type User struct {
	Username       string    `json:"username"`
	ProfilePicture *string   `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
	GameData       GameData  `json:"gameData"`
}

// GameData mirrors model.GameData in API responses
type GameData struct {
	Coins        int      `json:"coins"`
	Achievements []string `json:"achievements"`
	OwnedTracks  []string `json:"ownedTracks"`
}

// UserFromModel converts a model.User to its outward view
func UserFromModel(u *model.User) User {
	var picture *string
	if u.ProfilePicture != "" {
		p := u.ProfilePicture
		picture = &p
	}
	return User{
		Username:       u.Username,
		ProfilePicture: picture,
		CreatedAt:      u.CreatedAt,
		GameData: GameData{
			Coins:        u.GameData.Coins,
			Achievements: u.GameData.Achievements,
			OwnedTracks:  u.GameData.OwnedTracks,
		},
	}
}

// LoginResponse is the response for a successful login
type LoginResponse struct {
	Success bool   `json:"success"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

// HealthResponse is the response for the health endpoint
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
