package notification

import (
	"groomly/models"
)

// NotificationService manages the stylist notification feed. Event
// recording is best-effort: a failed notification write never fails the
// appointment operation that triggered it.
type NotificationService interface {
	// NotifyAppointmentCreated records a NEW_APPOINTMENT entry for the
	// stylist. Errors are logged, not returned.
	NotifyAppointmentCreated(appt *models.Appointment)

	// NotifyAppointmentConfirmed records an APPOINTMENT_CONFIRMED entry.
	NotifyAppointmentConfirmed(appt *models.Appointment)

	// NotifyAppointmentCancelled records an APPOINTMENT_CANCELLED entry.
	NotifyAppointmentCancelled(appt *models.Appointment)

	// NotifyAppointmentRescheduled records an APPOINTMENT_RESCHEDULED entry.
	NotifyAppointmentRescheduled(appt *models.Appointment)

	// RecordReminder records a REMINDER entry unless one already exists
	// for the appointment.
	RecordReminder(appt *models.Appointment) error

	// ListForStylist returns the stylist's notifications, newest first.
	ListForStylist(stylistID string) ([]models.StylistNotification, error)

	// UnreadCount returns the stylist's unread notification count.
	UnreadCount(stylistID string) (int64, error)

	// MarkRead flags one notification as read.
	MarkRead(id, stylistID string) error

	// MarkAllRead flags all of the stylist's notifications as read.
	MarkAllRead(stylistID string) error
}
