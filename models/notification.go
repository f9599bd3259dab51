package models

import "time"

// Notification kinds for stylist-facing appointment events.
const (
	NotificationNewAppointment = "NEW_APPOINTMENT"
	NotificationConfirmed      = "APPOINTMENT_CONFIRMED"
	NotificationCancelled      = "APPOINTMENT_CANCELLED"
	NotificationRescheduled    = "APPOINTMENT_RESCHEDULED"
	NotificationReminder       = "REMINDER"
)

// StylistNotification is a persisted notification shown to a stylist about
// one of their appointments. Delivery is pull-based (list/unread endpoints);
// there is no push channel.
type StylistNotification struct {
	ID            string    `bson:"id" json:"id"`
	StylistID     string    `bson:"stylistId" json:"stylistId"`
	AppointmentID string    `bson:"appointmentId" json:"appointmentId"`
	Kind          string    `bson:"kind" json:"kind"`
	Message       string    `bson:"message" json:"message"`
	Read          bool      `bson:"read" json:"read"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
