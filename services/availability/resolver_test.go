package availability

import (
	"reflect"
	"testing"
	"time"

	"groomly/models"
)

const stylistID = "stylist-1"

func rule(weekday int, start, end string, active bool) models.ScheduleRule {
	return models.ScheduleRule{
		ID:        "rule-1",
		StylistID: stylistID,
		Weekday:   weekday,
		Start:     models.MustTimeOfDay(start),
		End:       models.MustTimeOfDay(end),
		Active:    active,
	}
}

func appt(date, start string, status string) models.Appointment {
	s := models.MustTimeOfDay(start)
	return models.Appointment{
		ID:        "appt-1",
		StylistID: stylistID,
		Date:      date,
		Start:     s,
		End:       s.Add(60),
		Status:    status,
	}
}

func slot(start, end string, available bool) models.Slot {
	return models.Slot{
		Start:     models.MustTimeOfDay(start),
		End:       models.MustTimeOfDay(end),
		Available: available,
	}
}

func TestWeekdayIndex(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2024-01-01", 0}, // Monday
		{"2024-01-02", 1},
		{"2024-01-05", 4},
		{"2024-01-06", 5},
		{"2024-01-07", 6}, // Sunday
	}
	for _, tt := range tests {
		day, err := time.Parse(models.DateLayout, tt.date)
		if err != nil {
			t.Fatalf("parse %s: %v", tt.date, err)
		}
		if got := WeekdayIndex(day); got != tt.want {
			t.Errorf("WeekdayIndex(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestResolveSlots(t *testing.T) {
	monday := "2024-01-01"

	tests := []struct {
		name         string
		rules        []models.ScheduleRule
		appointments []models.Appointment
		date         string
		duration     int
		want         []models.Slot
	}{
		{
			name:  "no rule for weekday yields empty",
			rules: []models.ScheduleRule{rule(2, "09:00", "17:00", true)},
			date:  monday,
			want:  []models.Slot{},
		},
		{
			name:  "inactive rule yields empty",
			rules: []models.ScheduleRule{rule(0, "09:00", "17:00", false)},
			date:  monday,
			want:  []models.Slot{},
		},
		{
			name:  "two free slots from a two hour window",
			rules: []models.ScheduleRule{rule(0, "09:00", "11:00", true)},
			date:  monday,
			want: []models.Slot{
				slot("09:00", "10:00", true),
				slot("10:00", "11:00", true),
			},
		},
		{
			name:         "appointment at ten marks second slot occupied",
			rules:        []models.ScheduleRule{rule(0, "09:00", "11:00", true)},
			appointments: []models.Appointment{appt(monday, "10:00", models.AppointmentPending)},
			date:         monday,
			want: []models.Slot{
				slot("09:00", "10:00", true),
				slot("10:00", "11:00", false),
			},
		},
		{
			name:         "cancelled appointment does not block",
			rules:        []models.ScheduleRule{rule(0, "09:00", "11:00", true)},
			appointments: []models.Appointment{appt(monday, "10:00", models.AppointmentCancelled)},
			date:         monday,
			want: []models.Slot{
				slot("09:00", "10:00", true),
				slot("10:00", "11:00", true),
			},
		},
		{
			name:  "window shorter than slot duration yields no slots",
			rules: []models.ScheduleRule{rule(0, "09:00", "09:30", true)},
			date:  monday,
			want:  []models.Slot{},
		},
		{
			name:  "partial trailing slot is dropped",
			rules: []models.ScheduleRule{rule(0, "09:00", "10:30", true)},
			date:  monday,
			want: []models.Slot{
				slot("09:00", "10:00", true),
			},
		},
		{
			name: "slots concatenate in rule order without sorting",
			rules: []models.ScheduleRule{
				rule(0, "14:00", "16:00", true),
				rule(0, "09:00", "10:00", true),
			},
			date: monday,
			want: []models.Slot{
				slot("14:00", "15:00", true),
				slot("15:00", "16:00", true),
				slot("09:00", "10:00", true),
			},
		},
		{
			name:         "appointment on another date does not block",
			rules:        []models.ScheduleRule{rule(0, "09:00", "10:00", true)},
			appointments: []models.Appointment{appt("2024-01-08", "09:00", models.AppointmentConfirmed)},
			date:         monday,
			want: []models.Slot{
				slot("09:00", "10:00", true),
			},
		},
		{
			name:  "rule with start after end contributes nothing",
			rules: []models.ScheduleRule{rule(0, "17:00", "09:00", true)},
			date:  monday,
			want:  []models.Slot{},
		},
		{
			name:     "thirty minute slots",
			rules:    []models.ScheduleRule{rule(0, "09:00", "10:30", true)},
			date:     monday,
			duration: 30,
			want: []models.Slot{
				slot("09:00", "09:30", true),
				slot("09:30", "10:00", true),
				slot("10:00", "10:30", true),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			duration := tt.duration
			if duration == 0 {
				duration = DefaultSlotDuration
			}
			got := ResolveSlots(tt.rules, tt.appointments, stylistID, tt.date, duration)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveSlots() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveSlotsIdempotent(t *testing.T) {
	rules := []models.ScheduleRule{rule(0, "09:00", "12:00", true)}
	appts := []models.Appointment{appt("2024-01-01", "10:00", models.AppointmentConfirmed)}

	first := ResolveSlots(rules, appts, stylistID, "2024-01-01", 60)
	second := ResolveSlots(rules, appts, stylistID, "2024-01-01", 60)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated resolution differs: %v vs %v", first, second)
	}
}

func TestResolveSlotsFiltersByStylist(t *testing.T) {
	rules := []models.ScheduleRule{rule(0, "09:00", "10:00", true)}
	other := appt("2024-01-01", "09:00", models.AppointmentConfirmed)
	other.StylistID = "stylist-2"

	got := ResolveSlots(rules, []models.Appointment{other}, stylistID, "2024-01-01", 60)
	want := []models.Slot{slot("09:00", "10:00", true)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ResolveSlots() = %v, want %v", got, want)
	}
}
