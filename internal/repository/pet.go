package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/petsparadise/petsparadise/internal/model"
)

// ErrPetNotFound is returned when no pet matches the given ID.
var ErrPetNotFound = errors.New("pet not found")

const petColumns = "id, name, type, age, area, justification, email, phone, filename, status, created_at, updated_at"

// PetUpdate describes a partial update to a pet listing.
// Nil fields are left untouched; a non-nil field is written even when its
// value equals the stored one.
type PetUpdate struct {
	Email  *string
	Phone  *string
	Status *model.PetStatus
}

// IsEmpty reports whether no field is set.
func (u PetUpdate) IsEmpty() bool {
	return u.Email == nil && u.Phone == nil && u.Status == nil
}

// CreatePet inserts a new pet listing.
func (r *Repository) CreatePet(ctx context.Context, pet *model.Pet) error {
	query := `
		INSERT INTO pets (` + petColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		pet.ID,
		pet.Name,
		pet.Type,
		pet.Age,
		pet.Area,
		pet.Justification,
		pet.Email,
		pet.Phone,
		pet.Filename,
		pet.Status,
		pet.CreatedAt,
		pet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create pet: %w", err)
	}

	return nil
}

// GetPetByID retrieves a pet listing by its ID.
func (r *Repository) GetPetByID(ctx context.Context, id string) (*model.Pet, error) {
	query := `SELECT ` + petColumns + ` FROM pets WHERE id = $1`

	pet, err := scanPet(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPetNotFound
		}
		return nil, fmt.Errorf("failed to get pet by id: %w", err)
	}

	return pet, nil
}

// ListPetsByStatus retrieves all pets in the given status, most recently
// updated first.
func (r *Repository) ListPetsByStatus(ctx context.Context, status model.PetStatus) ([]*model.Pet, error) {
	query := `SELECT ` + petColumns + ` FROM pets WHERE status = $1 ORDER BY updated_at DESC`

	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	defer rows.Close()

	var pets []*model.Pet
	for rows.Next() {
		pet, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pet: %w", err)
		}
		pets = append(pets, pet)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pets: %w", err)
	}

	return pets, nil
}

// UpdatePet applies a partial update to a pet listing and returns the
// updated record. Returns ErrPetNotFound if the pet does not exist.
func (r *Repository) UpdatePet(ctx context.Context, id string, update PetUpdate) (*model.Pet, error) {
	if update.IsEmpty() {
		return r.GetPetByID(ctx, id)
	}

	query := `UPDATE pets SET updated_at = now()`
	args := []any{id}
	argIndex := 2

	if update.Email != nil {
		query += fmt.Sprintf(", email = $%d", argIndex)
		args = append(args, *update.Email)
		argIndex++
	}
	if update.Phone != nil {
		query += fmt.Sprintf(", phone = $%d", argIndex)
		args = append(args, *update.Phone)
		argIndex++
	}
	if update.Status != nil {
		query += fmt.Sprintf(", status = $%d", argIndex)
		args = append(args, *update.Status)
		argIndex++
	}

	query += ` WHERE id = $1 RETURNING ` + petColumns

	pet, err := scanPet(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPetNotFound
		}
		return nil, fmt.Errorf("failed to update pet: %w", err)
	}

	return pet, nil
}

// DeletePet removes a pet listing and returns the deleted record so the
// caller can clean up the associated image file.
func (r *Repository) DeletePet(ctx context.Context, id string) (*model.Pet, error) {
	query := `DELETE FROM pets WHERE id = $1 RETURNING ` + petColumns

	pet, err := scanPet(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPetNotFound
		}
		return nil, fmt.Errorf("failed to delete pet: %w", err)
	}

	return pet, nil
}

// scanPet scans a pet row from a query result.
func scanPet(row pgx.Row) (*model.Pet, error) {
	pet := &model.Pet{}
	err := row.Scan(
		&pet.ID,
		&pet.Name,
		&pet.Type,
		&pet.Age,
		&pet.Area,
		&pet.Justification,
		&pet.Email,
		&pet.Phone,
		&pet.Filename,
		&pet.Status,
		&pet.CreatedAt,
		&pet.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return pet, nil
}
