package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/petsparadise/petsparadise/internal/handler/dto"
	"github.com/petsparadise/petsparadise/internal/service"
)

// FormHandler handles HTTP requests for adoption application forms.
type FormHandler struct {
	svc    *service.FormService
	logger *slog.Logger
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(svc *service.FormService, logger *slog.Logger) *FormHandler {
	return &FormHandler{svc: svc, logger: logger}
}

// Save handles POST /form/save.
func (h *FormHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	form, err := h.svc.Submit(r.Context(), service.SubmitFormInput{
		Email:              req.Email,
		PhoneNo:            req.PhoneNo,
		LivingSituation:    req.LivingSituation,
		PreviousExperience: req.PreviousExperience,
		FamilyComposition:  req.FamilyComposition,
		PetID:              req.PetID,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("form_submitted", "form_id", form.ID, "pet_id", form.PetID)

	writeJSON(w, http.StatusOK, form)
}

// List handles GET /form/getForms.
func (h *FormHandler) List(w http.ResponseWriter, r *http.Request) {
	forms, err := h.svc.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, forms)
}

// Reject handles DELETE /form/reject/{id}.
func (h *FormHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "Form ID is required")
		return
	}

	if err := h.svc.Reject(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("form_rejected", "form_id", id)

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Form rejected successfully"})
}

// DeleteForPet handles DELETE /form/delete/many/{petId}. It removes every
// application filed for the given pet, typically after an adoption.
func (h *FormHandler) DeleteForPet(w http.ResponseWriter, r *http.Request) {
	petID := chi.URLParam(r, "petId")
	if petID == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "Pet ID is required")
		return
	}

	deleted, err := h.svc.RemoveForPet(r.Context(), petID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("forms_deleted_for_pet", "pet_id", petID, "deleted", deleted)

	writeJSON(w, http.StatusOK, dto.DeleteManyResponse{
		Message: "Forms deleted successfully",
		Deleted: deleted,
	})
}

// handleServiceError maps form service errors to HTTP responses.
func (h *FormHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFormFields):
		writeError(w, http.StatusBadRequest, "MISSING_FIELDS", "All application fields are required")
	case errors.Is(err, service.ErrNoForms):
		writeError(w, http.StatusNotFound, "NO_DATA", "No data found")
	case errors.Is(err, service.ErrFormNotFound):
		writeError(w, http.StatusNotFound, "FORM_NOT_FOUND", "Adoption form not found")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
