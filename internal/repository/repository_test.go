package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/petsparadise/petsparadise/internal/model"
	"github.com/petsparadise/petsparadise/internal/testutil"
)

func newTestRepository(t *testing.T, ctx context.Context) *Repository {
	t.Helper()

	dbURL := testutil.RequireEnv(t, "DATABASE_URL")
	repo, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("create repository: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		_ = unlock()
	})

	if err := repo.Migrate(ctx); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	if err := testutil.TruncateAll(ctx, repo.Pool()); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}

	return repo
}

func TestRepository_CreateAndGetAdmin(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, ctx)

	admin := testutil.NewTestAdmin(t, "shelter")
	if err := repo.CreateAdmin(ctx, admin); err != nil {
		t.Fatalf("create admin: %v", err)
	}

	byUsername, err := repo.GetAdminByUsername(ctx, admin.Username)
	if err != nil {
		t.Fatalf("get admin by username: %v", err)
	}
	if byUsername.ID != admin.ID {
		t.Fatalf("expected ID %s, got %s", admin.ID, byUsername.ID)
	}

	byID, err := repo.GetAdminByID(ctx, admin.ID)
	if err != nil {
		t.Fatalf("get admin by ID: %v", err)
	}
	if byID.Username != admin.Username {
		t.Fatalf("expected username %s, got %s", admin.Username, byID.Username)
	}

	duplicate := testutil.NewTestAdmin(t, "shelter")
	if err := repo.CreateAdmin(ctx, duplicate); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	if _, err := repo.GetAdminByUsername(ctx, "nobody"); !errors.Is(err, ErrAdminNotFound) {
		t.Fatalf("expected ErrAdminNotFound, got %v", err)
	}
}

func TestRepository_UpdateAdminPassword(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, ctx)

	admin := testutil.NewTestAdmin(t, "shelter")
	if err := repo.CreateAdmin(ctx, admin); err != nil {
		t.Fatalf("create admin: %v", err)
	}

	if err := repo.UpdateAdminPassword(ctx, admin.ID, "new-hash"); err != nil {
		t.Fatalf("update password: %v", err)
	}

	loaded, err := repo.GetAdminByID(ctx, admin.ID)
	if err != nil {
		t.Fatalf("get admin: %v", err)
	}
	if loaded.PasswordHash != "new-hash" {
		t.Fatalf("expected updated hash, got %s", loaded.PasswordHash)
	}

	if err := repo.UpdateAdminPassword(ctx, "missing", "x"); !errors.Is(err, ErrAdminNotFound) {
		t.Fatalf("expected ErrAdminNotFound, got %v", err)
	}
}

func TestRepository_CreateAndListPets(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, ctx)

	first := testutil.NewTestPet(t, "Rex")
	if err := repo.CreatePet(ctx, first); err != nil {
		t.Fatalf("create pet: %v", err)
	}

	second := testutil.NewTestPet(t, "Luna")
	second.UpdatedAt = first.UpdatedAt.Add(time.Second)
	if err := repo.CreatePet(ctx, second); err != nil {
		t.Fatalf("create pet: %v", err)
	}

	pending, err := repo.ListPetsByStatus(ctx, model.PetStatusPending)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending pets, got %d", len(pending))
	}
	if pending[0].Name != "Luna" {
		t.Fatalf("expected most recently updated first, got %s", pending[0].Name)
	}

	approved, err := repo.ListPetsByStatus(ctx, model.PetStatusApproved)
	if err != nil {
		t.Fatalf("list approved: %v", err)
	}
	if len(approved) != 0 {
		t.Fatalf("expected no approved pets, got %d", len(approved))
	}
}

func TestRepository_UpdatePet(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, ctx)

	pet := testutil.NewTestPet(t, "Rex")
	if err := repo.CreatePet(ctx, pet); err != nil {
		t.Fatalf("create pet: %v", err)
	}

	status := model.PetStatusApproved
	email := "new-owner@example.com"
	updated, err := repo.UpdatePet(ctx, pet.ID, PetUpdate{Status: &status, Email: &email})
	if err != nil {
		t.Fatalf("update pet: %v", err)
	}
	if updated.Status != model.PetStatusApproved {
		t.Fatalf("expected Approved, got %s", updated.Status)
	}
	if updated.Email != email {
		t.Fatalf("expected email %s, got %s", email, updated.Email)
	}
	if updated.Phone != pet.Phone {
		t.Fatalf("untouched field changed: expected phone %s, got %s", pet.Phone, updated.Phone)
	}
	if !updated.UpdatedAt.After(pet.UpdatedAt) {
		t.Fatalf("expected updated_at to advance")
	}

	if _, err := repo.UpdatePet(ctx, "missing", PetUpdate{Status: &status}); !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("expected ErrPetNotFound, got %v", err)
	}
}

func TestRepository_DeletePet(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, ctx)

	pet := testutil.NewTestPet(t, "Rex")
	if err := repo.CreatePet(ctx, pet); err != nil {
		t.Fatalf("create pet: %v", err)
	}

	deleted, err := repo.DeletePet(ctx, pet.ID)
	if err != nil {
		t.Fatalf("delete pet: %v", err)
	}
	if deleted.Filename != pet.Filename {
		t.Fatalf("expected filename %s, got %s", pet.Filename, deleted.Filename)
	}

	if _, err := repo.GetPetByID(ctx, pet.ID); !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("expected ErrPetNotFound, got %v", err)
	}
	if _, err := repo.DeletePet(ctx, pet.ID); !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("expected ErrPetNotFound on second delete, got %v", err)
	}
}

func TestRepository_Forms(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, ctx)

	first := testutil.NewTestForm(t, "pet-1")
	if err := repo.CreateForm(ctx, first); err != nil {
		t.Fatalf("create form: %v", err)
	}
	second := testutil.NewTestForm(t, "pet-1")
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	if err := repo.CreateForm(ctx, second); err != nil {
		t.Fatalf("create form: %v", err)
	}
	other := testutil.NewTestForm(t, "pet-2")
	if err := repo.CreateForm(ctx, other); err != nil {
		t.Fatalf("create form: %v", err)
	}

	forms, err := repo.ListForms(ctx)
	if err != nil {
		t.Fatalf("list forms: %v", err)
	}
	if len(forms) != 3 {
		t.Fatalf("expected 3 forms, got %d", len(forms))
	}
	if forms[0].ID != second.ID {
		t.Fatalf("expected newest form first, got %s", forms[0].ID)
	}

	if err := repo.DeleteForm(ctx, other.ID); err != nil {
		t.Fatalf("delete form: %v", err)
	}
	if err := repo.DeleteForm(ctx, other.ID); !errors.Is(err, ErrFormNotFound) {
		t.Fatalf("expected ErrFormNotFound, got %v", err)
	}

	deleted, err := repo.DeleteFormsByPet(ctx, "pet-1")
	if err != nil {
		t.Fatalf("delete forms by pet: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("expected 2 deleted, got %d", deleted)
	}

	remaining, err := repo.ListForms(ctx)
	if err != nil {
		t.Fatalf("list forms: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected no remaining forms, got %d", len(remaining))
	}
}
