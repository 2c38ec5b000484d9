package dto

import "github.com/synergyspace/idea-api/internal/models"

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// ToRegisterResponse builds the registration payload for a user and its token.
func ToRegisterResponse(user models.User, token string) RegisterResponse {
	return RegisterResponse{
		UserID:   user.ID.String(),
		Username: user.Username,
		Token:    token,
	}
}
