package models

import (
	"fmt"
	"time"
)

// Appointment lifecycle states.
const (
	AppointmentPending   = "PENDING"
	AppointmentConfirmed = "CONFIRMED"
	AppointmentCancelled = "CANCELLED"
	AppointmentCompleted = "COMPLETED"
	AppointmentNoShow    = "NO_SHOW"
)

// Appointment is a booked grooming session between a client's pet and a
// stylist. For a given stylist and date, PENDING/CONFIRMED appointments must
// not overlap; that invariant is enforced at insert time by the repository
// (conditional insert), not trusted from availability output.
type Appointment struct {
	ID        string    `bson:"id" json:"id"`
	PetID     string    `bson:"petId" json:"petId"`
	PetName   string    `bson:"petName,omitempty" json:"petName,omitempty"`
	ServiceID string    `bson:"serviceId" json:"serviceId"`
	StylistID string    `bson:"stylistId" json:"stylistId"`
	ClientID  string    `bson:"clientId" json:"clientId"`
	Date      string    `bson:"date" json:"date"` // YYYY-MM-DD
	Start     TimeOfDay `bson:"start" json:"start"`
	End       TimeOfDay `bson:"end" json:"end"`
	Status    string    `bson:"status" json:"status"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Blocks reports whether the appointment occupies its time range for
// availability purposes. Cancelled (and terminal) appointments do not block.
func (a Appointment) Blocks() bool {
	return a.Status == AppointmentPending || a.Status == AppointmentConfirmed
}

// Overlaps reports whether [a.Start, a.End) intersects [start, end).
func (a Appointment) Overlaps(start, end TimeOfDay) bool {
	return a.Start < end && start < a.End
}

// EndsAt combines the appointment date and end time into a local time.Time.
func (a Appointment) EndsAt() (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, a.Date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid appointment date %q: %w", a.Date, err)
	}
	return d.Add(time.Duration(a.End) * time.Minute), nil
}

// Confirm moves a pending appointment to CONFIRMED.
func (a *Appointment) Confirm() error {
	switch a.Status {
	case AppointmentConfirmed:
		return fmt.Errorf("appointment is already confirmed")
	case AppointmentCancelled:
		return fmt.Errorf("cannot confirm a cancelled appointment")
	case AppointmentCompleted, AppointmentNoShow:
		return fmt.Errorf("cannot confirm an appointment in state %s", a.Status)
	}
	a.Status = AppointmentConfirmed
	return nil
}

// Cancel moves a pending or confirmed appointment to CANCELLED.
func (a *Appointment) Cancel() error {
	switch a.Status {
	case AppointmentCancelled:
		return fmt.Errorf("appointment is already cancelled")
	case AppointmentCompleted, AppointmentNoShow:
		return fmt.Errorf("cannot cancel an appointment in state %s", a.Status)
	}
	a.Status = AppointmentCancelled
	return nil
}

// Complete marks the appointment as carried out. Only allowed once its end
// time has passed and it is still pending or confirmed.
func (a *Appointment) Complete(now time.Time) error {
	if a.Status == AppointmentCancelled {
		return fmt.Errorf("cannot complete a cancelled appointment")
	}
	if a.Status == AppointmentCompleted {
		return fmt.Errorf("appointment is already completed")
	}
	if a.Status != AppointmentPending && a.Status != AppointmentConfirmed {
		return fmt.Errorf("cannot complete an appointment in state %s", a.Status)
	}
	endsAt, err := a.EndsAt()
	if err != nil {
		return err
	}
	if endsAt.After(now) {
		return fmt.Errorf("appointment has not finished yet")
	}
	a.Status = AppointmentCompleted
	return nil
}

// MarkNoShow records that the client did not attend.
func (a *Appointment) MarkNoShow() error {
	switch a.Status {
	case AppointmentCancelled, AppointmentNoShow:
		return fmt.Errorf("appointment is already in state %s", a.Status)
	case AppointmentCompleted:
		return fmt.Errorf("cannot mark a completed appointment as no-show")
	}
	a.Status = AppointmentNoShow
	return nil
}
