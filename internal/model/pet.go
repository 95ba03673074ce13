// Package model defines domain entities for the application.
package model

import "time"

// PetStatus represents the review state of a pet listing.
type PetStatus string

const (
	PetStatusPending  PetStatus = "Pending"
	PetStatusApproved PetStatus = "Approved"
	PetStatusAdopted  PetStatus = "Adopted"
)

// IsValid checks if the status is one of the known states.
func (s PetStatus) IsValid() bool {
	return s == PetStatusPending || s == PetStatusApproved || s == PetStatusAdopted
}

// Pet represents a pet listing submitted for adoption.
// A listing is created in Pending state and moves to Approved or Adopted
// when an administrator reviews it. Rejection deletes the record.
type Pet struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Age           string    `json:"age"`
	Area          string    `json:"area"`
	Justification string    `json:"justification"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Filename      string    `json:"filename"`
	Status        PetStatus `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IsPubliclyVisible returns true if the listing shows up on the public site.
func (p *Pet) IsPubliclyVisible() bool {
	return p.Status == PetStatusApproved
}
