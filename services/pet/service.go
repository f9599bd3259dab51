package pet

import (
	"fmt"
	"time"

	petRepo "groomly/database/repository/pet"
	"groomly/models"
	"groomly/utils"

	"github.com/google/uuid"
)

// PetService manages a client's pets. Every operation is scoped to the
// owner: a pet belonging to someone else behaves as if it did not exist.
type PetService interface {
	Create(ownerID string, pet models.Pet) (*models.Pet, error)
	GetByID(id, ownerID string) (*models.Pet, error)
	ListForOwner(ownerID string) ([]models.Pet, error)
	Update(ownerID string, pet models.Pet) (*models.Pet, error)
	Delete(id, ownerID string) error
}

// DefaultPetService implements PetService.
type DefaultPetService struct {
	Repo petRepo.PetRepository
}

func (s *DefaultPetService) Create(ownerID string, pet models.Pet) (*models.Pet, error) {
	if pet.Name == "" {
		return nil, &utils.ValidationError{Message: "pet name is required"}
	}

	pet.ID = uuid.New().String()
	pet.OwnerID = ownerID
	now := time.Now()
	pet.CreatedAt = now
	pet.UpdatedAt = now

	if err := s.Repo.Create(&pet); err != nil {
		return nil, err
	}
	return &pet, nil
}

func (s *DefaultPetService) GetByID(id, ownerID string) (*models.Pet, error) {
	pet, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, &utils.NotFoundError{Message: fmt.Sprintf("pet %s not found", id)}
	}
	if pet.OwnerID != ownerID {
		return nil, &utils.NotFoundError{Message: fmt.Sprintf("pet %s not found", id)}
	}
	return pet, nil
}

func (s *DefaultPetService) ListForOwner(ownerID string) ([]models.Pet, error) {
	return s.Repo.GetByOwner(ownerID)
}

func (s *DefaultPetService) Update(ownerID string, pet models.Pet) (*models.Pet, error) {
	current, err := s.GetByID(pet.ID, ownerID)
	if err != nil {
		return nil, err
	}
	if pet.Name == "" {
		return nil, &utils.ValidationError{Message: "pet name is required"}
	}

	current.Name = pet.Name
	current.Breed = pet.Breed
	current.AgeYears = pet.AgeYears
	current.Notes = pet.Notes

	if err := s.Repo.Update(current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *DefaultPetService) Delete(id, ownerID string) error {
	if _, err := s.GetByID(id, ownerID); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
