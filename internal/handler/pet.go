package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/petsparadise/petsparadise/internal/handler/dto"
	"github.com/petsparadise/petsparadise/internal/model"
	"github.com/petsparadise/petsparadise/internal/service"
)

// PetHandler handles HTTP requests for pet listings.
type PetHandler struct {
	svc           *service.PetService
	logger        *slog.Logger
	maxUploadSize int64
}

// NewPetHandler creates a new PetHandler.
func NewPetHandler(svc *service.PetService, logger *slog.Logger, maxUploadSize int64) *PetHandler {
	return &PetHandler{
		svc:           svc,
		logger:        logger,
		maxUploadSize: maxUploadSize,
	}
}

// Submit handles POST /services. The body is multipart form data with the
// image in the "picture" field.
func (h *PetHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		h.logger.Warn("failed to parse submission form", "error", err)
		writeError(w, http.StatusInternalServerError, "SUBMISSION_FAILED", "Could not process the submission")
		return
	}

	input := service.SubmitPetInput{
		Name:          r.FormValue("name"),
		Type:          r.FormValue("type"),
		Age:           r.FormValue("age"),
		Area:          r.FormValue("area"),
		Email:         r.FormValue("email"),
		Phone:         r.FormValue("phone"),
		Justification: r.FormValue("justification"),
	}

	file, header, err := r.FormFile("picture")
	if err == nil {
		defer file.Close()
		input.Image = file
		input.ImageName = header.Filename
	}

	pet, err := h.svc.Submit(r.Context(), input)
	if err != nil {
		h.logger.Warn("pet submission rejected", "error", err)
		writeError(w, http.StatusInternalServerError, "SUBMISSION_FAILED", "Could not process the submission")
		return
	}

	h.logger.Info("pet_submitted", "pet_id", pet.ID, "name", pet.Name)

	writeJSON(w, http.StatusOK, pet)
}

// ListPending handles GET /requests.
func (h *PetHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, model.PetStatusPending)
}

// ListApproved handles GET /approvedPets.
func (h *PetHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, model.PetStatusApproved)
}

// ListAdopted handles GET /adoptedPets.
func (h *PetHandler) ListAdopted(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, model.PetStatusAdopted)
}

func (h *PetHandler) listByStatus(w http.ResponseWriter, r *http.Request, status model.PetStatus) {
	pets, err := h.svc.ListByStatus(r.Context(), status)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pets)
}

// Update handles PUT /approving/{id}.
func (h *PetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "Pet ID is required")
		return
	}

	var req dto.UpdatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	input := service.UpdatePetInput{
		Email: req.Email,
		Phone: req.Phone,
	}
	if req.Status != nil {
		status := model.PetStatus(*req.Status)
		input.Status = &status
	}

	pet, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("pet_updated", "pet_id", pet.ID, "status", string(pet.Status))

	writeJSON(w, http.StatusOK, pet)
}

// Delete handles DELETE /delete/{id}.
func (h *PetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "Pet ID is required")
		return
	}

	if err := h.svc.Remove(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("pet_deleted", "pet_id", id)

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Pet deleted successfully"})
}

// handleServiceError maps pet service errors to HTTP responses.
func (h *PetHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNoPets):
		writeError(w, http.StatusNotFound, "NO_DATA", "No data found")
	case errors.Is(err, service.ErrPetNotFound):
		writeError(w, http.StatusNotFound, "PET_NOT_FOUND", "Pet not found")
	case errors.Is(err, service.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "INVALID_STATUS", "Unknown listing status")
	case errors.Is(err, service.ErrMissingFields), errors.Is(err, service.ErrMissingImage):
		writeError(w, http.StatusBadRequest, "MISSING_FIELDS", err.Error())
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
