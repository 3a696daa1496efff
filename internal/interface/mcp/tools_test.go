package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"markethub/internal/application"
	"markethub/internal/testutil"
	"markethub/pkg/apperr"
)

func toJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func newServices() (*application.UserService, *application.ProductService) {
	users := application.NewUserService(testutil.NewMemUserRepository(), nil)
	products := application.NewProductService(testutil.NewMemProductRepository(), nil)
	return users, products
}

func TestUserToolsRoundTrip(t *testing.T) {
	users, _ := newServices()
	ctx := context.Background()

	_, created, err := CreateUserHandler(users)(ctx, nil, CreateUserInput{
		Email:    "a@x.com",
		Password: "secret1",
		Name:     "A",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "a@x.com", created.Email)
	assert.NotEmpty(t, created.CreatedAt)

	_, got, err := GetUserByIDHandler(users)(ctx, nil, GetUserInput{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	name := "Alice"
	_, updated, err := UpdateUserHandler(users)(ctx, nil, UpdateUserInput{ID: created.ID, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.Name)
	assert.Equal(t, "a@x.com", updated.Email)

	_, list, err := GetAllUsersHandler(users)(ctx, nil, ListUsersInput{})
	require.NoError(t, err)
	require.Len(t, list.Users, 1)

	_, deleted, err := DeleteUserHandler(users)(ctx, nil, GetUserInput{ID: created.ID})
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)
	assert.Equal(t, created.ID, deleted.ID)

	_, list, err = GetAllUsersHandler(users)(ctx, nil, ListUsersInput{})
	require.NoError(t, err)
	assert.Empty(t, list.Users)
}

func TestUserToolErrorsSurfaceAsHandlerErrors(t *testing.T) {
	users, _ := newServices()
	ctx := context.Background()

	_, _, err := GetUserByIDHandler(users)(ctx, nil, GetUserInput{ID: "missing-id"})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	_, _, err = CreateUserHandler(users)(ctx, nil, CreateUserInput{Email: "a@x.com", Password: "secret1", Name: "A"})
	require.NoError(t, err)
	_, _, err = CreateUserHandler(users)(ctx, nil, CreateUserInput{Email: "a@x.com", Password: "secret1", Name: "B"})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestProductToolsRoundTrip(t *testing.T) {
	_, products := newServices()
	ctx := context.Background()

	_, created, err := CreateProductHandler(products)(ctx, nil, CreateProductInput{
		Name:        "Arabica Coffee Beans",
		Description: "Single-origin arabica beans",
		UnitPrice:   10,
		Quantity:    120,
		MeasureType: "kg",
		Attributes:  map[string]any{"origin": "Colombia"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, 10.0, created.UnitPrice)

	newQty := 5.0
	_, updated, err := UpdateProductHandler(products)(ctx, nil, UpdateProductInput{ID: created.ID, Quantity: &newQty})
	require.NoError(t, err)
	assert.Equal(t, 5.0, updated.Quantity)
	assert.Equal(t, 10.0, updated.UnitPrice, "untouched fields survive a partial update")

	_, list, err := GetAllProductsHandler(products)(ctx, nil, ListProductsInput{})
	require.NoError(t, err)
	require.Len(t, list.Products, 1)

	_, deleted, err := DeleteProductHandler(products)(ctx, nil, GetProductInput{ID: created.ID})
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)

	_, _, err = GetProductByIDHandler(products)(ctx, nil, GetProductInput{ID: created.ID})
	assert.True(t, apperr.IsNotFound(err))
}

func TestUserPayloadNeverCarriesPassword(t *testing.T) {
	users, _ := newServices()

	_, created, err := CreateUserHandler(users)(context.Background(), nil, CreateUserInput{
		Email:    "a@x.com",
		Password: "secret1",
		Name:     "A",
	})
	require.NoError(t, err)

	// the payload type has no password field at all; the strongest check
	// available is that the serialized form never mentions one
	assert.NotContains(t, toJSON(t, created), "password")
}

func TestServerRegistersToolCatalog(t *testing.T) {
	users, products := newServices()
	srv := New(users, products, "test", nil)
	assert.NotNil(t, srv.impl)
}
