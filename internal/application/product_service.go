package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"markethub/internal/domain/entity"
	repo "markethub/internal/domain/repository"
	"markethub/pkg/apperr"
)

type ProductService struct {
	Repo   repo.ProductRepository
	Logger *logrus.Logger
}

func NewProductService(repo repo.ProductRepository, logger *logrus.Logger) *ProductService {
	return &ProductService{Repo: repo, Logger: logger}
}

type CreateProductInput struct {
	Name        string
	Description string
	PictureURL  string
	UnitPrice   float64
	Quantity    float64
	MeasureType string
	Attributes  map[string]any
}

type UpdateProductInput struct {
	Name        *string
	Description *string
	PictureURL  *string
	UnitPrice   *float64
	Quantity    *float64
	MeasureType *string
	Attributes  map[string]any
}

func (s *ProductService) CreateProduct(ctx context.Context, in CreateProductInput) (*entity.Product, error) {
	p, err := s.Repo.Create(ctx, &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		PictureURL:  in.PictureURL,
		UnitPrice:   in.UnitPrice,
		Quantity:    in.Quantity,
		MeasureType: in.MeasureType,
		Attributes:  in.Attributes,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to create product", err)
	}
	if s.Logger != nil {
		s.Logger.WithField("product_id", p.ID.Hex()).Info("product created")
	}
	return p, nil
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to list products", err)
	}
	return products, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to load product", err)
	}
	if p == nil {
		return nil, apperr.New(apperr.NotFound, "product not found")
	}
	return p, nil
}

// UpdateProduct applies a partial update; fields absent from the input are
// left as stored.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, in UpdateProductInput) (*entity.Product, error) {
	current, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to load product", err)
	}
	if current == nil {
		return nil, apperr.New(apperr.NotFound, "product not found")
	}

	updated, err := s.Repo.Update(ctx, id, entity.ProductPatch{
		Name:        in.Name,
		Description: in.Description,
		PictureURL:  in.PictureURL,
		UnitPrice:   in.UnitPrice,
		Quantity:    in.Quantity,
		MeasureType: in.MeasureType,
		Attributes:  in.Attributes,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to update product", err)
	}
	if updated == nil {
		return nil, apperr.New(apperr.Internal, "failed to update product")
	}
	if s.Logger != nil {
		s.Logger.WithField("product_id", id).Info("product updated")
	}
	return updated, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	p, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "failed to load product", err)
	}
	if p == nil {
		return apperr.New(apperr.NotFound, "product not found")
	}

	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "failed to delete product", err)
	}
	if !deleted {
		return apperr.New(apperr.Internal, "failed to delete product")
	}
	if s.Logger != nil {
		s.Logger.WithField("product_id", id).Info("product deleted")
	}
	return nil
}
