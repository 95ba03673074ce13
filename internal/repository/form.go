package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/petsparadise/petsparadise/internal/model"
)

// ErrFormNotFound is returned when no adoption form matches the given ID.
var ErrFormNotFound = errors.New("adoption form not found")

// CreateForm inserts a new adoption application form.
func (r *Repository) CreateForm(ctx context.Context, form *model.AdoptionForm) error {
	query := `
		INSERT INTO adoption_forms (id, email, phone_no, living_situation, previous_experience, family_composition, pet_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		form.ID,
		form.Email,
		form.PhoneNo,
		form.LivingSituation,
		form.PreviousExperience,
		form.FamilyComposition,
		form.PetID,
		form.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create adoption form: %w", err)
	}

	return nil
}

// ListForms retrieves all adoption forms, newest first.
func (r *Repository) ListForms(ctx context.Context) ([]*model.AdoptionForm, error) {
	query := `
		SELECT id, email, phone_no, living_situation, previous_experience, family_composition, pet_id, created_at
		FROM adoption_forms
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list adoption forms: %w", err)
	}
	defer rows.Close()

	var forms []*model.AdoptionForm
	for rows.Next() {
		form := &model.AdoptionForm{}
		err := rows.Scan(
			&form.ID,
			&form.Email,
			&form.PhoneNo,
			&form.LivingSituation,
			&form.PreviousExperience,
			&form.FamilyComposition,
			&form.PetID,
			&form.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan adoption form: %w", err)
		}
		forms = append(forms, form)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating adoption forms: %w", err)
	}

	return forms, nil
}

// DeleteForm removes a single adoption form by ID.
func (r *Repository) DeleteForm(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM adoption_forms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete adoption form: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFormNotFound
	}

	return nil
}

// DeleteFormsByPet removes every adoption form submitted for the given
// pet. Used for bookkeeping after a pet is adopted or its listing
// removed. Returns the number of deleted forms.
func (r *Repository) DeleteFormsByPet(ctx context.Context, petID string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM adoption_forms WHERE pet_id = $1`, petID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete adoption forms for pet: %w", err)
	}

	return tag.RowsAffected(), nil
}
