package notificationRepo

import "groomly/models"

// NotificationRepository defines data access for stylist notifications.
type NotificationRepository interface {
	// Create inserts a new notification.
	Create(n *models.StylistNotification) error

	// GetByStylist returns notifications for the stylist, newest first.
	GetByStylist(stylistID string) ([]models.StylistNotification, error)

	// MarkRead flags one notification as read. It is a no-op when the
	// notification belongs to a different stylist.
	MarkRead(id, stylistID string) error

	// MarkAllRead flags every unread notification for the stylist.
	MarkAllRead(stylistID string) error

	// UnreadCount returns the number of unread notifications.
	UnreadCount(stylistID string) (int64, error)

	// HasReminder reports whether a reminder was already recorded for
	// the given appointment.
	HasReminder(appointmentID string) (bool, error)
}
