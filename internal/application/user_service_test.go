package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"markethub/internal/testutil"
	"markethub/pkg/apperr"
	"markethub/pkg/helpers"
)

func newUserService() (*UserService, *testutil.MemUserRepository) {
	repo := testutil.NewMemUserRepository()
	return NewUserService(repo, nil), repo
}

func strp(s string) *string { return &s }

func TestCreateUserHashesPassword(t *testing.T) {
	svc, _ := newUserService()

	u, err := svc.CreateUser(context.Background(), CreateUserInput{
		Email:    "a@x.com",
		Password: "secret1",
		Name:     "A",
	})
	require.NoError(t, err)
	require.False(t, u.ID.IsZero())

	assert.NotEqual(t, "secret1", u.Password)
	assert.True(t, helpers.CompareHashAndPassword(u.Password, "secret1"))
	assert.False(t, u.CreatedAt.IsZero())
	assert.False(t, u.UpdatedAt.IsZero())
}

func TestCreateUserDuplicateEmailConflicts(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserInput{Email: "a@x.com", Password: "secret1", Name: "A"})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, CreateUserInput{Email: "a@x.com", Password: "other123", Name: "B"})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestGetUserByIDNotFound(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	_, err := svc.GetUserByID(ctx, "652d1c0f9b1e8a3d4c5b6a79")
	assert.True(t, apperr.IsNotFound(err))

	// malformed id is not-found, never an internal error
	_, err = svc.GetUserByID(ctx, "not-an-object-id")
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdateUserEmailUniqueness(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	a, err := svc.CreateUser(ctx, CreateUserInput{Email: "a@x.com", Password: "secret1", Name: "A"})
	require.NoError(t, err)
	_, err = svc.CreateUser(ctx, CreateUserInput{Email: "b@x.com", Password: "secret2", Name: "B"})
	require.NoError(t, err)

	// taking another user's email conflicts
	_, err = svc.UpdateUser(ctx, a.ID.Hex(), UpdateUserInput{Email: strp("b@x.com")})
	assert.True(t, apperr.IsConflict(err))

	// re-submitting the current email is fine
	got, err := svc.UpdateUser(ctx, a.ID.Hex(), UpdateUserInput{Email: strp("a@x.com"), Name: strp("Alice")})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, "Alice", got.Name)
}

func TestUpdateUserPartial(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, CreateUserInput{Email: "a@x.com", Password: "secret1", Name: "A", PictureURL: "http://img/a.png"})
	require.NoError(t, err)

	got, err := svc.UpdateUser(ctx, u.ID.Hex(), UpdateUserInput{Name: strp("Alice")})
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, "http://img/a.png", got.PictureURL)
	assert.Equal(t, u.Password, got.Password, "password hash untouched when not supplied")
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, CreateUserInput{Email: "a@x.com", Password: "secret1", Name: "A"})
	require.NoError(t, err)

	got, err := svc.UpdateUser(ctx, u.ID.Hex(), UpdateUserInput{Password: strp("newsecret")})
	require.NoError(t, err)
	assert.NotEqual(t, "newsecret", got.Password)
	assert.True(t, helpers.CompareHashAndPassword(got.Password, "newsecret"))
}

func TestUpdateUserNotFound(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.UpdateUser(context.Background(), "652d1c0f9b1e8a3d4c5b6a79", UpdateUserInput{Name: strp("X")})
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdateUserReadBackMissingIsInternal(t *testing.T) {
	svc, repo := newUserService()
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, CreateUserInput{Email: "a@x.com", Password: "secret1", Name: "A"})
	require.NoError(t, err)

	repo.VanishOnUpdate = true
	_, err = svc.UpdateUser(ctx, u.ID.Hex(), UpdateUserInput{Name: strp("X")})
	require.Error(t, err)
	assert.Equal(t, apperr.Internal, apperr.KindOf(err))
}

func TestDeleteUserTwice(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, CreateUserInput{Email: "a@x.com", Password: "secret1", Name: "A"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, u.ID.Hex()))

	err = svc.DeleteUser(ctx, u.ID.Hex())
	assert.True(t, apperr.IsNotFound(err), "second delete reports not found, not silent success")
}

func TestDeleteUserZeroAffectedIsInternal(t *testing.T) {
	svc, repo := newUserService()
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, CreateUserInput{Email: "a@x.com", Password: "secret1", Name: "A"})
	require.NoError(t, err)

	repo.FailDelete = true
	err = svc.DeleteUser(ctx, u.ID.Hex())
	require.Error(t, err)
	assert.Equal(t, apperr.Internal, apperr.KindOf(err))
}
