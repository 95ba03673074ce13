// Package testutil provides helpers shared across integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/petsparadise/petsparadise/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

const advisoryLockID int64 = 217217

// AcquireDBLock grabs a global advisory lock to serialize DB tests.
func AcquireDBLock(ctx context.Context, pool *pgxpool.Pool) (func() error, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", advisoryLockID); err != nil {
		conn.Release()
		return nil, fmt.Errorf("acquire advisory lock: %w", err)
	}

	unlock := func() error {
		defer conn.Release()
		if _, err := conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", advisoryLockID); err != nil {
			return fmt.Errorf("release advisory lock: %w", err)
		}
		return nil
	}

	return unlock, nil
}

// TruncateAll empties every application table between tests. The schema
// itself is managed by the embedded migrations.
func TruncateAll(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, "TRUNCATE adoption_forms, pets, admins"); err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}
	return nil
}

// ProjectRoot returns the project root directory.
func ProjectRoot() (string, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("failed to resolve testutil path")
	}
	root := filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
	return root, nil
}

// ============================================================================
// Test Data Factories
// ============================================================================

// NewTestPet creates a pending test pet with sensible defaults.
func NewTestPet(t testing.TB, name string) *model.Pet {
	t.Helper()
	now := time.Now().UTC()
	return &model.Pet{
		ID:            fmt.Sprintf("pet-%d", now.UnixNano()),
		Name:          name,
		Type:          "Dog",
		Age:           "2",
		Area:          "Springfield",
		Justification: "Moving abroad",
		Email:         "owner@example.com",
		Phone:         "555-0101",
		Filename:      fmt.Sprintf("%s.jpg", name),
		Status:        model.PetStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// NewTestAdmin creates a test admin record. The hash is not a real
// bcrypt digest; use the auth package where verification matters.
func NewTestAdmin(t testing.TB, username string) *model.Admin {
	t.Helper()
	now := time.Now().UTC()
	return &model.Admin{
		ID:           fmt.Sprintf("admin-%d", now.UnixNano()),
		Username:     username,
		PasswordHash: fmt.Sprintf("hash-%d", now.UnixNano()),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewTestForm creates a test adoption form for the given pet.
func NewTestForm(t testing.TB, petID string) *model.AdoptionForm {
	t.Helper()
	now := time.Now().UTC()
	return &model.AdoptionForm{
		ID:                 fmt.Sprintf("form-%d", now.UnixNano()),
		Email:              "applicant@example.com",
		PhoneNo:            "555-0102",
		LivingSituation:    "House with yard",
		PreviousExperience: "Grew up with dogs",
		FamilyComposition:  "Two adults",
		PetID:              petID,
		CreatedAt:          now,
	}
}

// UniqueID generates a unique ID for tests.
func UniqueID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
