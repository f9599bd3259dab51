package catalogRepo

import "groomly/models"

// CatalogRepository defines data access for the grooming service catalog.
type CatalogRepository interface {
	// Create inserts a new grooming service.
	Create(service *models.GroomService) error

	// GetByID fetches a grooming service by its ID.
	GetByID(id string) (*models.GroomService, error)

	// GetAll returns the catalog. When activeOnly is true, inactive
	// services are omitted.
	GetAll(activeOnly bool) ([]models.GroomService, error)

	// Update replaces an existing service document.
	Update(service *models.GroomService) error

	// SetActive toggles a service's visibility in the catalog.
	SetActive(id string, active bool) error
}
