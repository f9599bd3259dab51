package user

import (
	"fmt"

	"groomly/models"
	"groomly/utils"
)

func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	user, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, &utils.NotFoundError{Message: fmt.Sprintf("user %s not found", id)}
	}
	return user, nil
}

// Update applies profile changes. Credentials and role are managed
// elsewhere and never overwritten here.
func (s *DefaultUserService) Update(user *models.User) error {
	current, err := s.Repo.GetByID(user.ID)
	if err != nil {
		return &utils.NotFoundError{Message: fmt.Sprintf("user %s not found", user.ID)}
	}

	current.Name = user.Name
	current.Phone = user.Phone
	if current.Role == models.RoleStylist {
		current.Specialty = user.Specialty
		current.Experience = user.Experience
	}
	return s.Repo.Update(current)
}

func (s *DefaultUserService) ListStylists() ([]models.StylistDTO, error) {
	stylists, err := s.Repo.GetStylists()
	if err != nil {
		return nil, err
	}
	dtos := make([]models.StylistDTO, 0, len(stylists))
	for _, st := range stylists {
		dtos = append(dtos, st.PublicStylist())
	}
	return dtos, nil
}
