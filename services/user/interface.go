package user

import (
	userRepo "urbanpilgrim/database/repository/user"
	"urbanpilgrim/models"
)

// UserService covers the identity surface the booking and wizard flows need:
// an account, a bearer token, and a way to revoke it.
type UserService interface {
	// Register creates an account and signs the user in.
	Register(name, email, password, role string) (*AuthResponse, error)
	// Authenticate verifies credentials and issues a session token.
	Authenticate(email, password string) (*AuthResponse, error)
	// GetUserByID retrieves an account by ID.
	GetUserByID(userID string) (*models.User, error)
	// RevokeAuthToken invalidates the user's current session token.
	RevokeAuthToken(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// AuthResponse contains the user's identity and session token.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}
