package appointmentRepo

import (
	"context"

	"groomly/models"
)

// AppointmentRepository defines data access for appointments.
type AppointmentRepository interface {
	// CreateConditional inserts the appointment only if no blocking
	// appointment for the same stylist and date overlaps it. Returns a
	// ConflictError when the slot was taken in the meantime.
	CreateConditional(ctx context.Context, appt *models.Appointment) error

	// RescheduleConditional moves an existing appointment to a new date
	// and time under the same overlap check as CreateConditional. The
	// appointment being moved never blocks itself, must still exist and
	// must still be pending; a status change since the flow started
	// returns a ConflictError.
	RescheduleConditional(ctx context.Context, id, date string, start, end models.TimeOfDay) error

	// GetByID fetches an appointment by its ID.
	GetByID(id string) (*models.Appointment, error)

	// GetByStylistAndDate returns appointments for one stylist on one
	// date, in creation order.
	GetByStylistAndDate(stylistID, date string) ([]models.Appointment, error)

	// GetByClient returns every appointment booked by the given client,
	// newest date first.
	GetByClient(clientID string) ([]models.Appointment, error)

	// GetByStylist returns every appointment assigned to the given
	// stylist, newest date first.
	GetByStylist(stylistID string) ([]models.Appointment, error)

	// Update replaces an existing appointment document.
	Update(appt *models.Appointment) error

	// GetUnfinishedBefore returns pending and confirmed appointments
	// dated strictly before the given date, used by the completion sweep
	// to finalize past visits.
	GetUnfinishedBefore(date string) ([]models.Appointment, error)

	// GetUpcoming returns pending and confirmed appointments dated
	// between from and to inclusive, used by the reminder worker.
	GetUpcoming(from, to string) ([]models.Appointment, error)
}
