package repository

import (
	"context"

	"markethub/internal/domain/entity"
)

// UserRepository defines the document-store operations for users.
// Lookups return (nil, nil) when no document matches; a malformed
// identifier counts as absence, not as an error.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) (*entity.User, error)
	FindAll(ctx context.Context) ([]entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, id string, patch entity.UserPatch) (*entity.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}
