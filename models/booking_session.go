package models

// BookingStep identifies the wizard step the session is on.
type BookingStep int

// Wizard steps, in order. Forward transitions are gated by per-step
// completeness checks; backward transitions are unconditional except from
// SelectDateTime in reschedule mode, which aborts the flow.
const (
	StepSelectPet BookingStep = iota
	StepSelectService
	StepSelectStylist
	StepSelectDateTime
	StepConfirm
)

func (s BookingStep) String() string {
	switch s {
	case StepSelectPet:
		return "SelectPet"
	case StepSelectService:
		return "SelectService"
	case StepSelectStylist:
		return "SelectStylist"
	case StepSelectDateTime:
		return "SelectDateTime"
	case StepConfirm:
		return "Confirm"
	}
	return "Unknown"
}

// Booking session modes.
const (
	BookingModeNew        = "new"
	BookingModeReschedule = "reschedule"
)

// BookingDraft is the transient selection accumulated across the wizard.
// It is discarded when the session is confirmed or cancelled; a failed
// submission leaves it intact for resubmission.
type BookingDraft struct {
	Pet     *Pet          `json:"pet,omitempty"`
	Service *GroomService `json:"service,omitempty"`
	Stylist *StylistDTO   `json:"stylist,omitempty"`
	Date    string        `json:"date,omitempty"`
	Slot    *Slot         `json:"slot,omitempty"`
	Notes   string        `json:"notes,omitempty"`
}

// BookingSession holds the wizard state between requests, stored in Redis.
// The reference lists are loaded once at session start; reschedule entry
// resolves its pet/service/stylist against them by id.
type BookingSession struct {
	SessionID    string         `json:"sessionId"`
	ClientID     string         `json:"clientId"`
	Mode         string         `json:"mode"`
	RescheduleID string         `json:"rescheduleId,omitempty"`
	Step         BookingStep    `json:"step"`
	Draft        BookingDraft   `json:"draft"`
	Pets         []Pet          `json:"pets,omitempty"`
	Services     []GroomService `json:"services,omitempty"`
	Stylists     []StylistDTO   `json:"stylists,omitempty"`
	Availability []Slot         `json:"availability,omitempty"`

	// FetchGen is the generation of the latest issued availability fetch.
	// A completed fetch is applied only if its generation still matches,
	// so a stale response cannot overwrite a newer selection.
	FetchGen uint64 `json:"fetchGen"`
}
