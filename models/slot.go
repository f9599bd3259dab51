package models

// Slot is a derived, ephemeral bookable window. It is produced fresh on every
// availability resolution, never persisted, and has no identity beyond its
// time range.
type Slot struct {
	Start     TimeOfDay `json:"start"`
	End       TimeOfDay `json:"end"`
	Available bool      `json:"available"`
}
