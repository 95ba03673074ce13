package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/petsparadise/petsparadise/internal/metrics"
	"github.com/petsparadise/petsparadise/internal/model"
	"github.com/petsparadise/petsparadise/internal/repository"
)

// Form service errors.
var (
	ErrMissingFormFields = errors.New("all application fields are required")
	ErrFormNotFound      = errors.New("adoption form not found")
	ErrNoForms           = errors.New("no adoption forms found")
)

// FormStore is the persistence surface the form service depends on.
type FormStore interface {
	CreateForm(ctx context.Context, form *model.AdoptionForm) error
	ListForms(ctx context.Context) ([]*model.AdoptionForm, error)
	DeleteForm(ctx context.Context, id string) error
	DeleteFormsByPet(ctx context.Context, petID string) (int64, error)
}

// FormService manages adoption application forms.
type FormService struct {
	store   FormStore
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewFormService creates a new FormService.
func NewFormService(store FormStore, recorder metrics.Recorder, logger *slog.Logger) *FormService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &FormService{store: store, metrics: recorder, logger: logger}
}

// SubmitFormInput defines a public adoption application.
type SubmitFormInput struct {
	Email              string
	PhoneNo            string
	LivingSituation    string
	PreviousExperience string
	FamilyComposition  string
	PetID              string
}

// Submit stores a new adoption application for a pet listing.
func (s *FormService) Submit(ctx context.Context, input SubmitFormInput) (*model.AdoptionForm, error) {
	for _, field := range []string{input.Email, input.PhoneNo, input.LivingSituation, input.PreviousExperience, input.FamilyComposition, input.PetID} {
		if strings.TrimSpace(field) == "" {
			return nil, ErrMissingFormFields
		}
	}

	form := &model.AdoptionForm{
		ID:                 newID(),
		Email:              strings.TrimSpace(input.Email),
		PhoneNo:            strings.TrimSpace(input.PhoneNo),
		LivingSituation:    strings.TrimSpace(input.LivingSituation),
		PreviousExperience: strings.TrimSpace(input.PreviousExperience),
		FamilyComposition:  strings.TrimSpace(input.FamilyComposition),
		PetID:              input.PetID,
		CreatedAt:          time.Now().UTC(),
	}

	if err := s.store.CreateForm(ctx, form); err != nil {
		return nil, fmt.Errorf("failed to create adoption form: %w", err)
	}

	s.metrics.IncFormSubmitted()

	return form, nil
}

// List returns all adoption applications, newest first. Empty results
// are reported as ErrNoForms, matching the listing endpoints.
func (s *FormService) List(ctx context.Context) ([]*model.AdoptionForm, error) {
	forms, err := s.store.ListForms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list adoption forms: %w", err)
	}
	if len(forms) == 0 {
		return nil, ErrNoForms
	}

	return forms, nil
}

// Reject deletes a single adoption application.
func (s *FormService) Reject(ctx context.Context, id string) error {
	if err := s.store.DeleteForm(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFormNotFound) {
			return ErrFormNotFound
		}
		return fmt.Errorf("failed to delete adoption form: %w", err)
	}
	return nil
}

// RemoveForPet deletes every application submitted for a pet, typically
// after the pet is adopted or its listing removed.
func (s *FormService) RemoveForPet(ctx context.Context, petID string) (int64, error) {
	deleted, err := s.store.DeleteFormsByPet(ctx, petID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete adoption forms: %w", err)
	}

	s.logger.Info("adoption forms removed for pet",
		slog.String("pet_id", petID),
		slog.Int64("count", deleted),
	)

	return deleted, nil
}
