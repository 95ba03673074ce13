package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"time"

	"github.com/petsparadise/petsparadise/internal/model"
	"github.com/petsparadise/petsparadise/internal/notify"
	"github.com/petsparadise/petsparadise/internal/repository"
)

// fakePetStore is an in-memory PetStore for unit tests.
type fakePetStore struct {
	pets map[string]*model.Pet
}

func newFakePetStore() *fakePetStore {
	return &fakePetStore{pets: make(map[string]*model.Pet)}
}

func (f *fakePetStore) CreatePet(_ context.Context, pet *model.Pet) error {
	cp := *pet
	f.pets[pet.ID] = &cp
	return nil
}

func (f *fakePetStore) ListPetsByStatus(_ context.Context, status model.PetStatus) ([]*model.Pet, error) {
	var out []*model.Pet
	for _, p := range f.pets {
		if p.Status == status {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (f *fakePetStore) UpdatePet(_ context.Context, id string, update repository.PetUpdate) (*model.Pet, error) {
	p, ok := f.pets[id]
	if !ok {
		return nil, repository.ErrPetNotFound
	}
	if update.Email != nil {
		p.Email = *update.Email
	}
	if update.Phone != nil {
		p.Phone = *update.Phone
	}
	if update.Status != nil {
		p.Status = *update.Status
	}
	p.UpdatedAt = time.Now().UTC()
	cp := *p
	return &cp, nil
}

func (f *fakePetStore) DeletePet(_ context.Context, id string) (*model.Pet, error) {
	p, ok := f.pets[id]
	if !ok {
		return nil, repository.ErrPetNotFound
	}
	delete(f.pets, id)
	return p, nil
}

// fakeImageStore records saves and removals without touching disk.
type fakeImageStore struct {
	saved   map[string]bool
	removed []string
	seq     int
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{saved: make(map[string]bool)}
}

func (f *fakeImageStore) Save(src io.Reader, originalName string) (string, error) {
	if _, err := io.Copy(io.Discard, src); err != nil {
		return "", err
	}
	f.seq++
	name := fmt.Sprintf("stored-%d%s", f.seq, filepath.Ext(originalName))
	f.saved[name] = true
	return name, nil
}

func (f *fakeImageStore) Remove(filename string) error {
	// Mirrors the real store: removing a missing file is a no-op.
	delete(f.saved, filename)
	f.removed = append(f.removed, filename)
	return nil
}

// fakeNotifier records sent messages and can be made to fail.
type fakeNotifier struct {
	sent []notify.Message
	err  error
}

func (f *fakeNotifier) Send(_ context.Context, msg notify.Message) error {
	f.sent = append(f.sent, msg)
	return f.err
}

// fakeAdminStore is an in-memory AdminStore enforcing username uniqueness.
type fakeAdminStore struct {
	byID       map[string]*model.Admin
	byUsername map[string]*model.Admin
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{
		byID:       make(map[string]*model.Admin),
		byUsername: make(map[string]*model.Admin),
	}
}

func (f *fakeAdminStore) CreateAdmin(_ context.Context, admin *model.Admin) error {
	if _, exists := f.byUsername[admin.Username]; exists {
		return repository.ErrUsernameTaken
	}
	cp := *admin
	f.byID[admin.ID] = &cp
	f.byUsername[admin.Username] = &cp
	return nil
}

func (f *fakeAdminStore) GetAdminByUsername(_ context.Context, username string) (*model.Admin, error) {
	a, ok := f.byUsername[username]
	if !ok {
		return nil, repository.ErrAdminNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAdminStore) GetAdminByID(_ context.Context, id string) (*model.Admin, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrAdminNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAdminStore) UpdateAdminPassword(_ context.Context, id, passwordHash string) error {
	a, ok := f.byID[id]
	if !ok {
		return repository.ErrAdminNotFound
	}
	a.PasswordHash = passwordHash
	a.UpdatedAt = time.Now().UTC()
	return nil
}

// fakeFormStore is an in-memory FormStore.
type fakeFormStore struct {
	forms map[string]*model.AdoptionForm
}

func newFakeFormStore() *fakeFormStore {
	return &fakeFormStore{forms: make(map[string]*model.AdoptionForm)}
}

func (f *fakeFormStore) CreateForm(_ context.Context, form *model.AdoptionForm) error {
	cp := *form
	f.forms[form.ID] = &cp
	return nil
}

func (f *fakeFormStore) ListForms(_ context.Context) ([]*model.AdoptionForm, error) {
	var out []*model.AdoptionForm
	for _, form := range f.forms {
		cp := *form
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeFormStore) DeleteForm(_ context.Context, id string) error {
	if _, ok := f.forms[id]; !ok {
		return repository.ErrFormNotFound
	}
	delete(f.forms, id)
	return nil
}

func (f *fakeFormStore) DeleteFormsByPet(_ context.Context, petID string) (int64, error) {
	var deleted int64
	for id, form := range f.forms {
		if form.PetID == petID {
			delete(f.forms, id)
			deleted++
		}
	}
	return deleted, nil
}
