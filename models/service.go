package models

import "time"

// GroomService is a catalog entry: a grooming service with a fixed duration
// and price. Inactive services are hidden from the booking flow.
type GroomService struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Price           float64   `bson:"price" json:"price"`
	ImageURL        string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
