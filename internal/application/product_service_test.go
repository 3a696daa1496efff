package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"markethub/internal/testutil"
	"markethub/pkg/apperr"
)

func newProductService() (*ProductService, *testutil.MemProductRepository) {
	repo := testutil.NewMemProductRepository()
	return NewProductService(repo, nil), repo
}

func f64p(v float64) *float64 { return &v }

func sampleProduct() CreateProductInput {
	return CreateProductInput{
		Name:        "Arabica Coffee Beans",
		Description: "Single-origin arabica beans",
		UnitPrice:   10,
		Quantity:    120,
		MeasureType: "kg",
		Attributes:  map[string]any{"origin": "Colombia"},
	}
}

func TestCreateProduct(t *testing.T) {
	svc, _ := newProductService()

	p, err := svc.CreateProduct(context.Background(), sampleProduct())
	require.NoError(t, err)
	require.False(t, p.ID.IsZero())

	assert.Equal(t, "Arabica Coffee Beans", p.Name)
	assert.Equal(t, 10.0, p.UnitPrice)
	assert.Equal(t, "Colombia", p.Attributes["origin"])
	assert.False(t, p.CreatedAt.IsZero())
}

func TestCreateProductZeroValues(t *testing.T) {
	svc, _ := newProductService()

	in := sampleProduct()
	in.UnitPrice = 0
	in.Quantity = 0
	p, err := svc.CreateProduct(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.UnitPrice)
	assert.Equal(t, 0.0, p.Quantity)
}

func TestGetAllProductsOrder(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	first := sampleProduct()
	second := sampleProduct()
	second.Name = "Olive Oil"
	_, err := svc.CreateProduct(ctx, first)
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, second)
	require.NoError(t, err)

	all, err := svc.GetAllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Arabica Coffee Beans", all[0].Name)
	assert.Equal(t, "Olive Oil", all[1].Name)
}

func TestGetProductByIDNotFound(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	_, err := svc.GetProductByID(ctx, "652d1c0f9b1e8a3d4c5b6a79")
	assert.True(t, apperr.IsNotFound(err))

	_, err = svc.GetProductByID(ctx, "definitely-not-hex")
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdateProductPartial(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, sampleProduct())
	require.NoError(t, err)

	got, err := svc.UpdateProduct(ctx, p.ID.Hex(), UpdateProductInput{Quantity: f64p(5)})
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.Quantity)
	assert.Equal(t, 10.0, got.UnitPrice, "untouched fields keep their stored values")
	assert.Equal(t, "Arabica Coffee Beans", got.Name)
	assert.Equal(t, map[string]any{"origin": "Colombia"}, got.Attributes)
}

func TestUpdateProductReplacesAttributes(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, sampleProduct())
	require.NoError(t, err)

	got, err := svc.UpdateProduct(ctx, p.ID.Hex(), UpdateProductInput{
		Attributes: map[string]any{"roast": "dark"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"roast": "dark"}, got.Attributes, "attributes are replaced wholesale, not merged")
}

func TestUpdateProductNotFound(t *testing.T) {
	svc, _ := newProductService()

	_, err := svc.UpdateProduct(context.Background(), "652d1c0f9b1e8a3d4c5b6a79", UpdateProductInput{Quantity: f64p(1)})
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdateProductReadBackMissingIsInternal(t *testing.T) {
	svc, repo := newProductService()
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, sampleProduct())
	require.NoError(t, err)

	repo.VanishOnUpdate = true
	_, err = svc.UpdateProduct(ctx, p.ID.Hex(), UpdateProductInput{Quantity: f64p(1)})
	require.Error(t, err)
	assert.Equal(t, apperr.Internal, apperr.KindOf(err))
}

func TestDeleteProductTwice(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, sampleProduct())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, p.ID.Hex()))

	err = svc.DeleteProduct(ctx, p.ID.Hex())
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteProductZeroAffectedIsInternal(t *testing.T) {
	svc, repo := newProductService()
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, sampleProduct())
	require.NoError(t, err)

	repo.FailDelete = true
	err = svc.DeleteProduct(ctx, p.ID.Hex())
	require.Error(t, err)
	assert.Equal(t, apperr.Internal, apperr.KindOf(err))
}
