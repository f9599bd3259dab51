package models

import "time"

// Pet belongs to a client; appointments are always booked for a pet.
type Pet struct {
	ID        string    `bson:"id" json:"id"`
	OwnerID   string    `bson:"ownerId" json:"ownerId"`
	Name      string    `bson:"name" json:"name"`
	Breed     string    `bson:"breed" json:"breed"`
	AgeYears  int       `bson:"ageYears" json:"ageYears"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
