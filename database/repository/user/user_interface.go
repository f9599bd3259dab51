package userRepo

import "groomly/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address; nil if not found.
	GetByEmail(email string) (*models.User, error)
	// GetByTokenHash retrieves the user holding the given auth token hash.
	GetByTokenHash(tokenHash string) (*models.User, error)
	// GetStylists retrieves all users with the stylist role.
	GetStylists() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// UpdateTokenHash stores (or clears) the user's auth token hash.
	UpdateTokenHash(id, tokenHash string) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
