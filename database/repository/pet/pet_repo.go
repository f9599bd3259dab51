package petRepo

import "groomly/models"

// PetRepository defines data access for client pets.
type PetRepository interface {
	// Create inserts a new pet.
	Create(pet *models.Pet) error

	// GetByID fetches a pet by its ID.
	GetByID(id string) (*models.Pet, error)

	// GetByOwner returns every pet belonging to the given client.
	GetByOwner(ownerID string) ([]models.Pet, error)

	// Update replaces an existing pet document.
	Update(pet *models.Pet) error

	// Delete removes a pet by ID.
	Delete(id string) error
}
