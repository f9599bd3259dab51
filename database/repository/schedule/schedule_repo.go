package scheduleRepo

import "groomly/models"

// ScheduleRepository defines data access for stylist working-hour rules.
type ScheduleRepository interface {
	// Create inserts a new schedule rule.
	Create(rule *models.ScheduleRule) error

	// GetByID fetches a rule by its ID.
	GetByID(id string) (*models.ScheduleRule, error)

	// GetByStylist returns every rule for the given stylist, in
	// insertion order.
	GetByStylist(stylistID string) ([]models.ScheduleRule, error)

	// Update replaces an existing rule document.
	Update(rule *models.ScheduleRule) error

	// Delete removes a rule by ID.
	Delete(id string) error
}
