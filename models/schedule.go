package models

import "fmt"

// ScheduleRule is one recurring weekly working window for a stylist.
// Weekday uses the Monday=0 .. Sunday=6 convention (NOT Go's Sunday=0; see
// availability.WeekdayIndex for the conversion). A stylist may have several
// rules on the same weekday, e.g. split shifts.
type ScheduleRule struct {
	ID        string    `bson:"id" json:"id"`
	StylistID string    `bson:"stylistId" json:"stylistId"`
	Weekday   int       `bson:"weekday" json:"weekday"`
	Start     TimeOfDay `bson:"start" json:"start"`
	End       TimeOfDay `bson:"end" json:"end"`
	Active    bool      `bson:"active" json:"active"`
}

// Validate enforces the write-time invariants: weekday in range, start < end.
func (r ScheduleRule) Validate() error {
	if r.Weekday < 0 || r.Weekday > 6 {
		return fmt.Errorf("weekday must be between 0 (Monday) and 6 (Sunday), got %d", r.Weekday)
	}
	if r.Start >= r.End {
		return fmt.Errorf("schedule rule end %s must be after start %s", r.End, r.Start)
	}
	return nil
}
