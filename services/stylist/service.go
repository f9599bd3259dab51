package stylist

import (
	"fmt"

	scheduleRepo "groomly/database/repository/schedule"
	"groomly/models"
	"groomly/utils"

	"github.com/google/uuid"
)

// ScheduleService manages a stylist's weekly working-hour rules. Rules are
// owned: a stylist can only touch their own.
type ScheduleService interface {
	CreateRule(stylistID string, rule models.ScheduleRule) (*models.ScheduleRule, error)
	ListRules(stylistID string) ([]models.ScheduleRule, error)
	UpdateRule(stylistID string, rule models.ScheduleRule) (*models.ScheduleRule, error)
	DeleteRule(stylistID, ruleID string) error
}

// DefaultScheduleService implements ScheduleService.
type DefaultScheduleService struct {
	Repo scheduleRepo.ScheduleRepository
}

func (s *DefaultScheduleService) CreateRule(stylistID string, rule models.ScheduleRule) (*models.ScheduleRule, error) {
	rule.ID = uuid.New().String()
	rule.StylistID = stylistID
	if err := rule.Validate(); err != nil {
		return nil, &utils.ValidationError{Message: err.Error()}
	}
	if err := s.Repo.Create(&rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

func (s *DefaultScheduleService) ListRules(stylistID string) ([]models.ScheduleRule, error) {
	return s.Repo.GetByStylist(stylistID)
}

// fetchOwn loads a rule and verifies ownership.
func (s *DefaultScheduleService) fetchOwn(stylistID, ruleID string) (*models.ScheduleRule, error) {
	rule, err := s.Repo.GetByID(ruleID)
	if err != nil {
		return nil, &utils.NotFoundError{Message: fmt.Sprintf("schedule rule %s not found", ruleID)}
	}
	if rule.StylistID != stylistID {
		return nil, &utils.NotFoundError{Message: fmt.Sprintf("schedule rule %s not found", ruleID)}
	}
	return rule, nil
}

func (s *DefaultScheduleService) UpdateRule(stylistID string, rule models.ScheduleRule) (*models.ScheduleRule, error) {
	current, err := s.fetchOwn(stylistID, rule.ID)
	if err != nil {
		return nil, err
	}

	current.Weekday = rule.Weekday
	current.Start = rule.Start
	current.End = rule.End
	current.Active = rule.Active
	if err := current.Validate(); err != nil {
		return nil, &utils.ValidationError{Message: err.Error()}
	}

	if err := s.Repo.Update(current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *DefaultScheduleService) DeleteRule(stylistID, ruleID string) error {
	if _, err := s.fetchOwn(stylistID, ruleID); err != nil {
		return err
	}
	return s.Repo.Delete(ruleID)
}
