package request

// RegisterRequest is the request body for registering an account
type RegisterRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserRequest is the request body for updating the profile
type UpdateUserRequest struct {
	ProfilePicture string `json:"profilePicture,omitempty"`
}
