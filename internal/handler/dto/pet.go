package dto

// UpdatePetRequest is the body for PUT /approving/{id}. Absent fields are
// left untouched.
type UpdatePetRequest struct {
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Status *string `json:"status"`
}
