package dto

// SubmitFormRequest is the body for POST /form/save.
type SubmitFormRequest struct {
	Email              string `json:"email"`
	PhoneNo            string `json:"phoneNo"`
	LivingSituation    string `json:"livingSituation"`
	PreviousExperience string `json:"previousExperience"`
	FamilyComposition  string `json:"familyComposition"`
	PetID              string `json:"petId"`
}

// DeleteManyResponse reports a bulk form deletion.
type DeleteManyResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}
