// Package availability computes bookable time slots for a stylist on a
// given date from their weekly schedule rules and existing appointments.
package availability

import (
	"time"

	"groomly/models"
)

// DefaultSlotDuration is the slot length in minutes used when a caller
// passes a non-positive duration.
const DefaultSlotDuration = 60

// WeekdayIndex maps a calendar date to the Monday=0..Sunday=6 convention
// used by schedule rules. Go's time.Weekday has Sunday=0.
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// ResolveSlots produces the ordered slot list for one stylist on one date.
//
// The rules slice must already be scoped to the target stylist; the
// resolver narrows it further to active rules matching the date's weekday.
// The appointments slice may be the full set: the resolver filters
// internally by stylist id, exact date match, and non-cancelled state.
//
// Each matching rule contributes consecutive slots of slotDuration minutes
// starting at the rule's start; a trailing slot that would overrun the
// rule's end is dropped. A slot is occupied when some retained appointment
// starts exactly at the slot's start minute. Appointments starting mid-slot
// are not detected; the occupancy check is an exact-start match only.
//
// Slots are concatenated in rule iteration order without sorting or
// de-duplication. The function is pure and never returns an error: a rule
// whose start is not before its end simply contributes no slots.
func ResolveSlots(rules []models.ScheduleRule, appointments []models.Appointment, stylistID string, date string, slotDuration int) []models.Slot {
	if slotDuration <= 0 {
		slotDuration = DefaultSlotDuration
	}

	day, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return []models.Slot{}
	}
	weekday := WeekdayIndex(day)

	taken := make(map[models.TimeOfDay]bool)
	for _, appt := range appointments {
		if appt.StylistID != stylistID || appt.Date != date {
			continue
		}
		if appt.Status == models.AppointmentCancelled {
			continue
		}
		taken[appt.Start] = true
	}

	slots := []models.Slot{}
	for _, rule := range rules {
		if !rule.Active || rule.Weekday != weekday {
			continue
		}
		for start := rule.Start; start.Add(slotDuration) <= rule.End; start = start.Add(slotDuration) {
			slots = append(slots, models.Slot{
				Start:     start,
				End:       start.Add(slotDuration),
				Available: !taken[start],
			})
		}
	}
	return slots
}
