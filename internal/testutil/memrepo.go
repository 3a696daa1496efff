// Package testutil provides in-memory repository fakes mirroring the
// document-store semantics: malformed ids count as absence, updates are
// field-level merges, deletes report the affected count.
package testutil

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"markethub/internal/domain/entity"
	"markethub/internal/domain/repository"
)

type MemUserRepository struct {
	mu    sync.Mutex
	users map[string]entity.User
	order []string

	// test knobs
	FailDelete     bool // report zero affected documents
	VanishOnUpdate bool // read-back after update finds nothing
}

func NewMemUserRepository() *MemUserRepository {
	return &MemUserRepository{users: map[string]entity.User{}}
}

func (r *MemUserRepository) Create(_ context.Context, u *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.CreatedAt = now
	u.UpdatedAt = now
	id := u.ID.Hex()
	r.users[id] = *u
	r.order = append(r.order, id)
	out := *u
	return &out, nil
}

func (r *MemUserRepository) FindAll(_ context.Context) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.User, 0, len(r.order))
	for _, id := range r.order {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *MemUserRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	out := u
	return &out, nil
}

func (r *MemUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.order {
		if u, ok := r.users[id]; ok && u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *MemUserRepository) Update(_ context.Context, id string, patch entity.UserPatch) (*entity.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || r.VanishOnUpdate {
		return nil, nil
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Password != nil {
		u.Password = *patch.Password
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.PictureURL != nil {
		u.PictureURL = *patch.PictureURL
	}
	u.UpdatedAt = time.Now().UTC()
	r.users[id] = u
	out := u
	return &out, nil
}

func (r *MemUserRepository) Delete(_ context.Context, id string) (bool, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return false, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailDelete {
		return false, nil
	}
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

type MemProductRepository struct {
	mu       sync.Mutex
	products map[string]entity.Product
	order    []string

	FailDelete     bool
	VanishOnUpdate bool
}

func NewMemProductRepository() *MemProductRepository {
	return &MemProductRepository{products: map[string]entity.Product{}}
}

func (r *MemProductRepository) Create(_ context.Context, p *entity.Product) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now
	id := p.ID.Hex()
	r.products[id] = *p
	r.order = append(r.order, id)
	out := *p
	return &out, nil
}

func (r *MemProductRepository) FindAll(_ context.Context) ([]entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Product, 0, len(r.order))
	for _, id := range r.order {
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *MemProductRepository) FindByID(_ context.Context, id string) (*entity.Product, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	out := p
	return &out, nil
}

func (r *MemProductRepository) Update(_ context.Context, id string, patch entity.ProductPatch) (*entity.Product, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok || r.VanishOnUpdate {
		return nil, nil
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.PictureURL != nil {
		p.PictureURL = *patch.PictureURL
	}
	if patch.UnitPrice != nil {
		p.UnitPrice = *patch.UnitPrice
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	if patch.MeasureType != nil {
		p.MeasureType = *patch.MeasureType
	}
	if patch.Attributes != nil {
		p.Attributes = patch.Attributes
	}
	p.UpdatedAt = time.Now().UTC()
	r.products[id] = p
	out := p
	return &out, nil
}

func (r *MemProductRepository) Delete(_ context.Context, id string) (bool, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return false, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailDelete {
		return false, nil
	}
	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)
	return true, nil
}

var (
	_ repository.UserRepository    = (*MemUserRepository)(nil)
	_ repository.ProductRepository = (*MemProductRepository)(nil)
)
