package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"markethub/internal/domain/entity"
)

func TestPatchDocDropsUnsetFields(t *testing.T) {
	name := "Alice"
	set, err := patchDoc(entity.UserPatch{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Alice", set["name"])
	assert.Contains(t, set, "updated_at")
	assert.NotContains(t, set, "email", "unset fields must not be written")
	assert.NotContains(t, set, "password")
	assert.NotContains(t, set, "picture_url")
}

func TestPatchDocKeepsExplicitZero(t *testing.T) {
	zero := 0.0
	set, err := patchDoc(entity.ProductPatch{UnitPrice: &zero, Quantity: &zero})
	require.NoError(t, err)

	assert.Equal(t, 0.0, set["unit_price"], "an explicit zero is a real update")
	assert.Equal(t, 0.0, set["quantity"])
	assert.NotContains(t, set, "name")
	assert.NotContains(t, set, "attributes")
}

func TestPatchDocEmptyPatchStillStampsUpdatedAt(t *testing.T) {
	set, err := patchDoc(entity.UserPatch{})
	require.NoError(t, err)

	require.Len(t, set, 1)
	assert.Contains(t, set, "updated_at")
}
