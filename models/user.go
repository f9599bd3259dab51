package models

import "time"

// User roles.
const (
	RoleClient  = "CLIENT"
	RoleStylist = "STYLIST"
	RoleAdmin   = "ADMIN"
)

// User represents an account: a pet owner, a stylist, or an admin.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`

	// Stylist-only profile fields.
	Specialty  string `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Experience string `bson:"experience,omitempty" json:"experience,omitempty"`
}

// StylistDTO is the public view of a stylist returned to clients.
type StylistDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Specialty  string `json:"specialty,omitempty"`
	Experience string `json:"experience,omitempty"`
}

// PublicStylist strips account-private fields from a stylist user.
func (u User) PublicStylist() StylistDTO {
	return StylistDTO{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Specialty:  u.Specialty,
		Experience: u.Experience,
	}
}
