package repository

import (
	"context"

	"markethub/internal/domain/entity"
)

// ProductRepository defines the document-store operations for products.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) (*entity.Product, error)
	FindAll(ctx context.Context) ([]entity.Product, error)
	FindByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}
