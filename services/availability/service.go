package availability

import (
	"fmt"
	"sync"
	"time"

	"groomly/config"
	appointmentRepo "groomly/database/repository/appointment"
	scheduleRepo "groomly/database/repository/schedule"
	"groomly/models"
	"groomly/utils"
)

// Service resolves a stylist's slots for a date from persisted rules and
// appointments.
type Service interface {
	// SlotsFor resolves the slot list. slotDuration <= 0 falls back to
	// the configured default.
	SlotsFor(stylistID, date string, slotDuration int) ([]models.Slot, error)

	// DayOverview returns the raw inputs for a date: the stylist's
	// schedule rules and that day's appointments.
	DayOverview(stylistID, date string) (*DayView, error)
}

// DayView is the unresolved availability picture for one stylist and date.
type DayView struct {
	Rules        []models.ScheduleRule `json:"rules"`
	Appointments []models.Appointment  `json:"appointments"`
}

// DefaultService implements Service.
type DefaultService struct {
	ScheduleRepo    scheduleRepo.ScheduleRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
}

// SlotsFor loads the stylist's rules and same-date appointments
// concurrently, then resolves them into the ordered slot list.
func (s *DefaultService) SlotsFor(stylistID, date string, slotDuration int) ([]models.Slot, error) {
	rules, appts, err := s.load(stylistID, date)
	if err != nil {
		return nil, err
	}
	if slotDuration <= 0 {
		slotDuration = config.AppConfig.SlotDurationMinutes
	}
	return ResolveSlots(rules, appts, stylistID, date, slotDuration), nil
}

// DayOverview returns the stylist's rules and the date's appointments
// without slot resolution.
func (s *DefaultService) DayOverview(stylistID, date string) (*DayView, error) {
	rules, appts, err := s.load(stylistID, date)
	if err != nil {
		return nil, err
	}
	if rules == nil {
		rules = []models.ScheduleRule{}
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	return &DayView{Rules: rules, Appointments: appts}, nil
}

func (s *DefaultService) load(stylistID, date string) ([]models.ScheduleRule, []models.Appointment, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, nil, &utils.ValidationError{Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date)}
	}

	var (
		wg       sync.WaitGroup
		rules    []models.ScheduleRule
		appts    []models.Appointment
		rulesErr error
		apptsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		rules, rulesErr = s.ScheduleRepo.GetByStylist(stylistID)
	}()
	go func() {
		defer wg.Done()
		appts, apptsErr = s.AppointmentRepo.GetByStylistAndDate(stylistID, date)
	}()
	wg.Wait()

	if rulesErr != nil {
		return nil, nil, fmt.Errorf("failed to load schedule rules: %w", rulesErr)
	}
	if apptsErr != nil {
		return nil, nil, fmt.Errorf("failed to load appointments: %w", apptsErr)
	}
	return rules, appts, nil
}
