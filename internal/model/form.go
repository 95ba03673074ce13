package model

import "time"

// AdoptionForm represents an adoption application submitted by a visitor
// for a specific pet listing.
type AdoptionForm struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	PhoneNo            string    `json:"phoneNo"`
	LivingSituation    string    `json:"livingSituation"`
	PreviousExperience string    `json:"previousExperience"`
	FamilyComposition  string    `json:"familyComposition"`
	PetID              string    `json:"petId"`
	CreatedAt          time.Time `json:"created_at"`
}
