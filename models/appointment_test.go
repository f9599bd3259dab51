package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppointment(status string) *Appointment {
	return &Appointment{
		ID:        "appt-1",
		StylistID: "stylist-1",
		ClientID:  "client-1",
		Date:      "2024-06-10",
		Start:     MustTimeOfDay("10:00"),
		End:       MustTimeOfDay("11:00"),
		Status:    status,
	}
}

func TestConfirmTransitions(t *testing.T) {
	a := newAppointment(AppointmentPending)
	require.NoError(t, a.Confirm())
	assert.Equal(t, AppointmentConfirmed, a.Status)

	for _, status := range []string{AppointmentConfirmed, AppointmentCancelled, AppointmentCompleted, AppointmentNoShow} {
		a := newAppointment(status)
		assert.Error(t, a.Confirm(), "confirm from %s", status)
		assert.Equal(t, status, a.Status, "status must not change on rejected transition")
	}
}

func TestCancelTransitions(t *testing.T) {
	for _, status := range []string{AppointmentPending, AppointmentConfirmed} {
		a := newAppointment(status)
		require.NoError(t, a.Cancel(), "cancel from %s", status)
		assert.Equal(t, AppointmentCancelled, a.Status)
	}

	for _, status := range []string{AppointmentCancelled, AppointmentCompleted, AppointmentNoShow} {
		a := newAppointment(status)
		assert.Error(t, a.Cancel(), "cancel from %s", status)
	}
}

func TestCompleteRequiresEndPassed(t *testing.T) {
	day, err := time.ParseInLocation(DateLayout, "2024-06-10", time.Local)
	require.NoError(t, err)

	a := newAppointment(AppointmentConfirmed)

	before := day.Add(10*time.Hour + 30*time.Minute)
	assert.Error(t, a.Complete(before))
	assert.Equal(t, AppointmentConfirmed, a.Status)

	after := day.Add(11*time.Hour + 1*time.Minute)
	require.NoError(t, a.Complete(after))
	assert.Equal(t, AppointmentCompleted, a.Status)
}

func TestCompleteRejectsTerminalStates(t *testing.T) {
	later := time.Date(2030, 1, 1, 0, 0, 0, 0, time.Local)
	for _, status := range []string{AppointmentCancelled, AppointmentCompleted, AppointmentNoShow} {
		a := newAppointment(status)
		assert.Error(t, a.Complete(later), "complete from %s", status)
	}
}

func TestMarkNoShow(t *testing.T) {
	a := newAppointment(AppointmentConfirmed)
	require.NoError(t, a.MarkNoShow())
	assert.Equal(t, AppointmentNoShow, a.Status)

	for _, status := range []string{AppointmentCancelled, AppointmentCompleted, AppointmentNoShow} {
		a := newAppointment(status)
		assert.Error(t, a.MarkNoShow(), "no-show from %s", status)
	}
}

func TestBlocksAndOverlaps(t *testing.T) {
	assert.True(t, newAppointment(AppointmentPending).Blocks())
	assert.True(t, newAppointment(AppointmentConfirmed).Blocks())
	assert.False(t, newAppointment(AppointmentCancelled).Blocks())
	assert.False(t, newAppointment(AppointmentCompleted).Blocks())

	a := newAppointment(AppointmentPending)
	assert.True(t, a.Overlaps(MustTimeOfDay("10:30"), MustTimeOfDay("11:30")))
	assert.True(t, a.Overlaps(MustTimeOfDay("09:30"), MustTimeOfDay("10:30")))
	assert.False(t, a.Overlaps(MustTimeOfDay("11:00"), MustTimeOfDay("12:00")), "half-open ranges must not overlap at the boundary")
	assert.False(t, a.Overlaps(MustTimeOfDay("09:00"), MustTimeOfDay("10:00")))
}

func TestScheduleRuleValidate(t *testing.T) {
	valid := ScheduleRule{Weekday: 0, Start: MustTimeOfDay("09:00"), End: MustTimeOfDay("17:00")}
	assert.NoError(t, valid.Validate())

	badDay := ScheduleRule{Weekday: 7, Start: MustTimeOfDay("09:00"), End: MustTimeOfDay("17:00")}
	assert.Error(t, badDay.Validate())

	inverted := ScheduleRule{Weekday: 2, Start: MustTimeOfDay("17:00"), End: MustTimeOfDay("09:00")}
	assert.Error(t, inverted.Validate())

	empty := ScheduleRule{Weekday: 2, Start: MustTimeOfDay("09:00"), End: MustTimeOfDay("09:00")}
	assert.Error(t, empty.Validate())
}
