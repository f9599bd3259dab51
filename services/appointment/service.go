package appointment

import (
	"fmt"
	"time"

	appointmentRepo "groomly/database/repository/appointment"
	"groomly/models"
	"groomly/services/notification"
	"groomly/utils"

	"go.uber.org/zap"
)

// AppointmentService manages the appointment lifecycle after booking.
type AppointmentService interface {
	// GetByID fetches one appointment, visible only to its client or its
	// stylist (admins see everything).
	GetByID(id, actorID, role string) (*models.Appointment, error)

	// ListForClient returns the client's appointments, auto-completing
	// pending and confirmed visits whose date has passed.
	ListForClient(clientID string) ([]models.Appointment, error)

	// ListForStylist returns the stylist's appointments, with the same
	// auto-completion pass.
	ListForStylist(stylistID string) ([]models.Appointment, error)

	// DayView returns the stylist's appointments for a single date.
	DayView(stylistID, date string) ([]models.Appointment, error)

	// Confirm moves a pending appointment to confirmed. Stylist only,
	// own appointments.
	Confirm(id, stylistID string) (*models.Appointment, error)

	// Cancel cancels an appointment. The stylist or the client who
	// booked it may cancel; completed visits cannot be cancelled.
	Cancel(id, actorID, role string) (*models.Appointment, error)

	// Complete marks a visit as carried out once its end time has
	// passed. Stylist only.
	Complete(id, stylistID string) (*models.Appointment, error)

	// MarkNoShow records that the client did not attend. Stylist only.
	MarkNoShow(id, stylistID string) (*models.Appointment, error)
}

// DefaultAppointmentService implements AppointmentService.
type DefaultAppointmentService struct {
	Repo            appointmentRepo.AppointmentRepository
	NotificationSvc notification.NotificationService

	// Now is the clock used for completion checks. Defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultAppointmentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultAppointmentService) GetByID(id, actorID, role string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, &utils.NotFoundError{Message: fmt.Sprintf("appointment %s not found", id)}
	}
	if role != models.RoleAdmin && appt.ClientID != actorID && appt.StylistID != actorID {
		return nil, &utils.NotFoundError{Message: fmt.Sprintf("appointment %s not found", id)}
	}
	return appt, nil
}

// autoCompletePast flips pending and confirmed appointments whose date has
// passed to completed. Failures are logged and the stale status returned
// as-is.
func (s *DefaultAppointmentService) autoCompletePast(appts []models.Appointment) []models.Appointment {
	today := s.now().Format(models.DateLayout)
	for i := range appts {
		if appts[i].Date >= today {
			continue
		}
		if appts[i].Status != models.AppointmentPending && appts[i].Status != models.AppointmentConfirmed {
			continue
		}
		prev := appts[i].Status
		appts[i].Status = models.AppointmentCompleted
		if err := s.Repo.Update(&appts[i]); err != nil {
			utils.GetLogger().Warn("failed to auto-complete past appointment",
				zap.String("appointmentId", appts[i].ID),
				zap.Error(err))
			appts[i].Status = prev
		}
	}
	return appts
}

func (s *DefaultAppointmentService) ListForClient(clientID string) ([]models.Appointment, error) {
	appts, err := s.Repo.GetByClient(clientID)
	if err != nil {
		return nil, err
	}
	return s.autoCompletePast(appts), nil
}

func (s *DefaultAppointmentService) ListForStylist(stylistID string) ([]models.Appointment, error) {
	appts, err := s.Repo.GetByStylist(stylistID)
	if err != nil {
		return nil, err
	}
	return s.autoCompletePast(appts), nil
}

func (s *DefaultAppointmentService) DayView(stylistID, date string) ([]models.Appointment, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, &utils.ValidationError{Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date)}
	}
	return s.Repo.GetByStylistAndDate(stylistID, date)
}

// fetchOwn loads the appointment and verifies the stylist owns it.
func (s *DefaultAppointmentService) fetchOwn(id, stylistID string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, &utils.NotFoundError{Message: fmt.Sprintf("appointment %s not found", id)}
	}
	if appt.StylistID != stylistID {
		return nil, &utils.NotFoundError{Message: fmt.Sprintf("appointment %s not found", id)}
	}
	return appt, nil
}

func (s *DefaultAppointmentService) Confirm(id, stylistID string) (*models.Appointment, error) {
	appt, err := s.fetchOwn(id, stylistID)
	if err != nil {
		return nil, err
	}
	if err := appt.Confirm(); err != nil {
		return nil, &utils.ValidationError{Message: err.Error()}
	}
	if err := s.Repo.Update(appt); err != nil {
		return nil, err
	}
	go s.NotificationSvc.NotifyAppointmentConfirmed(appt)
	return appt, nil
}

func (s *DefaultAppointmentService) Cancel(id, actorID, role string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, &utils.NotFoundError{Message: fmt.Sprintf("appointment %s not found", id)}
	}
	switch role {
	case models.RoleStylist:
		if appt.StylistID != actorID {
			return nil, &utils.NotFoundError{Message: fmt.Sprintf("appointment %s not found", id)}
		}
	case models.RoleAdmin:
	default:
		if appt.ClientID != actorID {
			return nil, &utils.NotFoundError{Message: fmt.Sprintf("appointment %s not found", id)}
		}
	}
	if err := appt.Cancel(); err != nil {
		return nil, &utils.ValidationError{Message: err.Error()}
	}
	if err := s.Repo.Update(appt); err != nil {
		return nil, err
	}
	go s.NotificationSvc.NotifyAppointmentCancelled(appt)
	return appt, nil
}

func (s *DefaultAppointmentService) Complete(id, stylistID string) (*models.Appointment, error) {
	appt, err := s.fetchOwn(id, stylistID)
	if err != nil {
		return nil, err
	}
	if err := appt.Complete(s.now()); err != nil {
		return nil, &utils.ValidationError{Message: err.Error()}
	}
	if err := s.Repo.Update(appt); err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *DefaultAppointmentService) MarkNoShow(id, stylistID string) (*models.Appointment, error) {
	appt, err := s.fetchOwn(id, stylistID)
	if err != nil {
		return nil, err
	}
	if err := appt.MarkNoShow(); err != nil {
		return nil, &utils.ValidationError{Message: err.Error()}
	}
	if err := s.Repo.Update(appt); err != nil {
		return nil, err
	}
	return appt, nil
}
