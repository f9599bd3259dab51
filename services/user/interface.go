package user

import (
	userRepo "groomly/database/repository/user"
	"groomly/models"
)

// AuthResponse contains the signed-in user's identity and token.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

// UserService manages accounts and authentication.
type UserService interface {
	// Register creates a client or stylist account and signs it in.
	Register(user models.User, password string) (*AuthResponse, error)

	// SignIn authenticates by email and password. Credential failures
	// return an AuthError with a uniform message.
	SignIn(email, password string) (*AuthResponse, error)

	// SignOut revokes the user's current token and clears their session.
	SignOut(userID string) error

	// GetByID fetches an account by ID.
	GetByID(id string) (*models.User, error)

	// Update applies profile changes (name, phone, stylist fields).
	Update(user *models.User) error

	// ListStylists returns the public stylist directory.
	ListStylists() ([]models.StylistDTO, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
