package booking

import (
	appointmentRepo "groomly/database/repository/appointment"
	catalogRepo "groomly/database/repository/catalog"
	petRepo "groomly/database/repository/pet"
	scheduleRepo "groomly/database/repository/schedule"
	userRepo "groomly/database/repository/user"
	"groomly/models"
	"groomly/services/notification"
)

// BookingSessionService drives the multi-step booking wizard. Session state
// lives in Redis between requests; every call loads, mutates and saves it.
type BookingSessionService interface {
	// StartSession opens a wizard session for the client. With a
	// rescheduleID it enters reschedule mode: the target appointment's
	// pet, service and stylist are resolved from the freshly loaded
	// reference lists and the session starts at the date/time step.
	StartSession(clientID, rescheduleID string) (*models.BookingSession, error)

	// GetSession returns the current session state.
	GetSession(sessionID, clientID string) (*models.BookingSession, error)

	// SelectPet records the pet choice. The id must come from the
	// session's pet list.
	SelectPet(sessionID, clientID, petID string) (*models.BookingSession, error)

	// SelectService records the service choice.
	SelectService(sessionID, clientID, serviceID string) (*models.BookingSession, error)

	// SelectStylist records the stylist choice and clears any previously
	// resolved availability.
	SelectStylist(sessionID, clientID, stylistID string) (*models.BookingSession, error)

	// SetDate records the date choice and resolves availability for the
	// chosen stylist on that date. A slower, earlier resolution never
	// overwrites the result of a newer one.
	SetDate(sessionID, clientID, date string) (*models.BookingSession, error)

	// SelectSlot records the slot choice. The slot must be one of the
	// session's available slots.
	SelectSlot(sessionID, clientID, start string) (*models.BookingSession, error)

	// SetNotes attaches free-form notes to the draft.
	SetNotes(sessionID, clientID, notes string) (*models.BookingSession, error)

	// Advance moves to the next step if the current step's selection is
	// complete; otherwise it returns a ValidationError and the step is
	// unchanged.
	Advance(sessionID, clientID string) (*models.BookingSession, error)

	// Back moves to the previous step. Backing out of the first reachable
	// step ends the session and returns a nil session.
	Back(sessionID, clientID string) (*models.BookingSession, error)

	// Confirm submits the draft. On success the session is deleted and
	// the created or rescheduled appointment returned; on failure the
	// session and draft survive intact for another attempt.
	Confirm(sessionID, clientID string) (*models.Appointment, error)

	// CancelSession discards the session.
	CancelSession(sessionID, clientID string) error
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	PetRepo         petRepo.PetRepository
	CatalogRepo     catalogRepo.CatalogRepository
	UserRepo        userRepo.UserRepository
	ScheduleRepo    scheduleRepo.ScheduleRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
	NotificationSvc notification.NotificationService

	// Sessions persists wizard state between requests. Defaults to the
	// Redis booking cache when nil.
	Sessions SessionStore
}
