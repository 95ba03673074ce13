package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/petsparadise/petsparadise/internal/metrics"
	"github.com/petsparadise/petsparadise/internal/model"
	"github.com/petsparadise/petsparadise/internal/notify"
	"github.com/petsparadise/petsparadise/internal/repository"
)

// Pet service errors.
var (
	ErrMissingFields = errors.New("all listing fields are required")
	ErrMissingImage  = errors.New("an image upload is required")
	ErrInvalidStatus = errors.New("unknown listing status")
	ErrPetNotFound   = errors.New("pet not found")
	ErrNoPets        = errors.New("no pets found")
)

// PetStore is the persistence surface the pet service depends on.
type PetStore interface {
	CreatePet(ctx context.Context, pet *model.Pet) error
	ListPetsByStatus(ctx context.Context, status model.PetStatus) ([]*model.Pet, error)
	UpdatePet(ctx context.Context, id string, update repository.PetUpdate) (*model.Pet, error)
	DeletePet(ctx context.Context, id string) (*model.Pet, error)
}

// ImageStore persists uploaded listing images.
type ImageStore interface {
	Save(src io.Reader, originalName string) (string, error)
	Remove(filename string) error
}

// PetService manages the lifecycle of pet listings: public submission,
// administrative review and the notifications triggered by approval.
type PetService struct {
	store    PetStore
	images   ImageStore
	notifier notify.Notifier
	metrics  metrics.Recorder
	logger   *slog.Logger
}

// NewPetService creates a new PetService.
func NewPetService(store PetStore, images ImageStore, notifier notify.Notifier, recorder metrics.Recorder, logger *slog.Logger) *PetService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &PetService{
		store:    store,
		images:   images,
		notifier: notifier,
		metrics:  recorder,
		logger:   logger,
	}
}

// SubmitPetInput defines the public submission of a new listing.
type SubmitPetInput struct {
	Name          string
	Type          string
	Age           string
	Area          string
	Email         string
	Phone         string
	Justification string
	Image         io.Reader
	ImageName     string
}

// Submit validates a public pet surrender request, stores its image and
// creates the listing in Pending state. No authentication is involved.
func (s *PetService) Submit(ctx context.Context, input SubmitPetInput) (*model.Pet, error) {
	for _, field := range []string{input.Name, input.Type, input.Age, input.Area, input.Email, input.Phone, input.Justification} {
		if strings.TrimSpace(field) == "" {
			return nil, ErrMissingFields
		}
	}
	if input.Image == nil || input.ImageName == "" {
		return nil, ErrMissingImage
	}

	filename, err := s.images.Save(input.Image, input.ImageName)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	now := time.Now().UTC()
	pet := &model.Pet{
		ID:            newID(),
		Name:          strings.TrimSpace(input.Name),
		Type:          strings.TrimSpace(input.Type),
		Age:           strings.TrimSpace(input.Age),
		Area:          strings.TrimSpace(input.Area),
		Justification: strings.TrimSpace(input.Justification),
		Email:         strings.TrimSpace(input.Email),
		Phone:         strings.TrimSpace(input.Phone),
		Filename:      filename,
		Status:        model.PetStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.CreatePet(ctx, pet); err != nil {
		// Keep the invariant that a stored image always belongs to a listing.
		if rmErr := s.images.Remove(filename); rmErr != nil {
			s.logger.Error("failed to clean up image after create failure",
				slog.String("filename", filename),
				slog.String("error", rmErr.Error()),
			)
		}
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}

	s.metrics.IncPetSubmitted()

	return pet, nil
}

// ListByStatus returns all listings in the given status, most recently
// updated first. An empty result is reported as ErrNoPets: the API has
// always answered 404 for "no data found" and clients depend on it.
func (s *PetService) ListByStatus(ctx context.Context, status model.PetStatus) ([]*model.Pet, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	pets, err := s.store.ListPetsByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	if len(pets) == 0 {
		return nil, ErrNoPets
	}

	return pets, nil
}

// UpdatePetInput describes a partial update. Nil fields are untouched;
// present-but-unchanged values are rewritten idempotently.
type UpdatePetInput struct {
	Email  *string
	Phone  *string
	Status *model.PetStatus
}

// Update applies a partial update to a listing. When the status moves to
// Approved or Adopted and the listing has a contact email, exactly one
// notification is sent. The persisted state change is authoritative: a
// failed send is logged and swallowed, never rolled back.
func (s *PetService) Update(ctx context.Context, id string, input UpdatePetInput) (*model.Pet, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	pet, err := s.store.UpdatePet(ctx, id, repository.PetUpdate{
		Email:  input.Email,
		Phone:  input.Phone,
		Status: input.Status,
	})
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, fmt.Errorf("failed to update pet: %w", err)
	}

	s.metrics.IncPetUpdated()

	if input.Status != nil && pet.Email != "" {
		s.notifyStatusChange(ctx, pet, *input.Status)
	}

	return pet, nil
}

// Remove deletes a listing and then its stored image. Image removal is
// best-effort; a missing file is not an error.
func (s *PetService) Remove(ctx context.Context, id string) error {
	pet, err := s.store.DeletePet(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return ErrPetNotFound
		}
		return fmt.Errorf("failed to delete pet: %w", err)
	}

	if err := s.images.Remove(pet.Filename); err != nil {
		s.logger.Error("failed to remove image for deleted pet",
			slog.String("pet_id", pet.ID),
			slog.String("filename", pet.Filename),
			slog.String("error", err.Error()),
		)
	}

	s.metrics.IncPetDeleted()

	return nil
}

// notifyStatusChange sends the status-specific email for a transition to
// Approved or Adopted. Failures are absorbed here.
func (s *PetService) notifyStatusChange(ctx context.Context, pet *model.Pet, status model.PetStatus) {
	msg, ok := statusChangeMessage(pet, status)
	if !ok {
		return
	}

	if err := s.notifier.Send(ctx, msg); err != nil {
		s.logger.Error("failed to send status notification",
			slog.String("pet_id", pet.ID),
			slog.String("status", string(status)),
			slog.String("error", err.Error()),
		)
		s.metrics.IncNotification("failed")
		return
	}

	s.logger.Info("status notification sent",
		slog.String("pet_id", pet.ID),
		slog.String("status", string(status)),
	)
	s.metrics.IncNotification("sent")
}
