package catalog

import (
	"context"
	"fmt"
	"time"

	catalogRepo "groomly/database/repository/catalog"
	"groomly/models"
	"groomly/services/storage"
	"groomly/utils"

	"github.com/google/uuid"
)

// CatalogService manages the grooming service catalog. Mutations are
// admin-only; listing is open to any signed-in user.
type CatalogService interface {
	Create(service models.GroomService) (*models.GroomService, error)
	GetByID(id string) (*models.GroomService, error)
	List(activeOnly bool) ([]models.GroomService, error)
	Update(service models.GroomService) (*models.GroomService, error)
	SetActive(id string, active bool) error

	// AttachImage uploads a local image file and records its URL on the
	// service.
	AttachImage(ctx context.Context, id, localFilePath string) (*models.GroomService, error)
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Repo       catalogRepo.CatalogRepository
	StorageSvc storage.StorageService
}

func validate(service models.GroomService) error {
	if service.Name == "" {
		return &utils.ValidationError{Message: "service name is required"}
	}
	if service.DurationMinutes <= 0 {
		return &utils.ValidationError{Message: "service duration must be positive"}
	}
	if service.Price < 0 {
		return &utils.ValidationError{Message: "service price cannot be negative"}
	}
	return nil
}

func (s *DefaultCatalogService) Create(service models.GroomService) (*models.GroomService, error) {
	if err := validate(service); err != nil {
		return nil, err
	}

	service.ID = uuid.New().String()
	service.Active = true
	now := time.Now()
	service.CreatedAt = now
	service.UpdatedAt = now

	if err := s.Repo.Create(&service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (s *DefaultCatalogService) GetByID(id string) (*models.GroomService, error) {
	service, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, &utils.NotFoundError{Message: fmt.Sprintf("service %s not found", id)}
	}
	return service, nil
}

func (s *DefaultCatalogService) List(activeOnly bool) ([]models.GroomService, error) {
	return s.Repo.GetAll(activeOnly)
}

func (s *DefaultCatalogService) Update(service models.GroomService) (*models.GroomService, error) {
	current, err := s.GetByID(service.ID)
	if err != nil {
		return nil, err
	}
	if err := validate(service); err != nil {
		return nil, err
	}

	current.Name = service.Name
	current.Description = service.Description
	current.DurationMinutes = service.DurationMinutes
	current.Price = service.Price

	if err := s.Repo.Update(current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *DefaultCatalogService) SetActive(id string, active bool) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.Repo.SetActive(id, active)
}

func (s *DefaultCatalogService) AttachImage(ctx context.Context, id, localFilePath string) (*models.GroomService, error) {
	service, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s.StorageSvc == nil {
		return nil, fmt.Errorf("image storage is not configured")
	}

	url, err := s.StorageSvc.UploadImage(ctx, localFilePath, "catalog")
	if err != nil {
		return nil, err
	}
	service.ImageURL = url

	if err := s.Repo.Update(service); err != nil {
		return nil, err
	}
	return service, nil
}
