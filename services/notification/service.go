package notification

import (
	"fmt"
	"time"

	notificationRepo "groomly/database/repository/notification"
	"groomly/models"
	"groomly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultNotificationService implements NotificationService.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}

func (s *DefaultNotificationService) record(appt *models.Appointment, kind, message string) {
	n := &models.StylistNotification{
		ID:            uuid.New().String(),
		StylistID:     appt.StylistID,
		AppointmentID: appt.ID,
		Kind:          kind,
		Message:       message,
		CreatedAt:     time.Now(),
	}
	if err := s.Repo.Create(n); err != nil {
		utils.GetLogger().Error("failed to record notification",
			zap.String("kind", kind),
			zap.String("appointmentId", appt.ID),
			zap.Error(err))
	}
}

func (s *DefaultNotificationService) NotifyAppointmentCreated(appt *models.Appointment) {
	msg := fmt.Sprintf("New appointment for %s on %s at %s", appt.PetName, appt.Date, appt.Start)
	s.record(appt, models.NotificationNewAppointment, msg)
}

func (s *DefaultNotificationService) NotifyAppointmentConfirmed(appt *models.Appointment) {
	msg := fmt.Sprintf("Appointment on %s at %s was confirmed", appt.Date, appt.Start)
	s.record(appt, models.NotificationConfirmed, msg)
}

func (s *DefaultNotificationService) NotifyAppointmentCancelled(appt *models.Appointment) {
	msg := fmt.Sprintf("Appointment on %s at %s was cancelled", appt.Date, appt.Start)
	s.record(appt, models.NotificationCancelled, msg)
}

func (s *DefaultNotificationService) NotifyAppointmentRescheduled(appt *models.Appointment) {
	msg := fmt.Sprintf("Appointment moved to %s at %s", appt.Date, appt.Start)
	s.record(appt, models.NotificationRescheduled, msg)
}

// RecordReminder writes at most one reminder per appointment.
func (s *DefaultNotificationService) RecordReminder(appt *models.Appointment) error {
	exists, err := s.Repo.HasReminder(appt.ID)
	if err != nil {
		return fmt.Errorf("failed to check existing reminder: %w", err)
	}
	if exists {
		return nil
	}

	n := &models.StylistNotification{
		ID:            uuid.New().String(),
		StylistID:     appt.StylistID,
		AppointmentID: appt.ID,
		Kind:          models.NotificationReminder,
		Message:       fmt.Sprintf("Upcoming appointment for %s on %s at %s", appt.PetName, appt.Date, appt.Start),
		CreatedAt:     time.Now(),
	}
	if err := s.Repo.Create(n); err != nil {
		return fmt.Errorf("failed to record reminder: %w", err)
	}
	return nil
}

func (s *DefaultNotificationService) ListForStylist(stylistID string) ([]models.StylistNotification, error) {
	return s.Repo.GetByStylist(stylistID)
}

func (s *DefaultNotificationService) UnreadCount(stylistID string) (int64, error) {
	return s.Repo.UnreadCount(stylistID)
}

func (s *DefaultNotificationService) MarkRead(id, stylistID string) error {
	return s.Repo.MarkRead(id, stylistID)
}

func (s *DefaultNotificationService) MarkAllRead(stylistID string) error {
	return s.Repo.MarkAllRead(stylistID)
}
