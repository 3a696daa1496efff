package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Website  string `json:"website" binding:"omitempty,url"`
	Age      int    `json:"age" binding:"omitempty,gte=0"`
}

func validate(t *testing.T, v any) error {
	t.Helper()
	return binding.Validator.ValidateStruct(v)
}

func TestDetailsUseJSONFieldNames(t *testing.T) {
	Init()

	err := validate(t, signupForm{Email: "nope", Password: "123"})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "password")
	assert.Contains(t, details, "name")
	assert.NotContains(t, details, "Email", "Go field names must not leak into responses")
}

func TestDetailsMessages(t *testing.T) {
	Init()

	err := validate(t, signupForm{Email: "nope", Password: "123", Website: "not a url", Age: -1})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be a valid email", details["email"])
	assert.Equal(t, "must be at least 6 characters long", details["password"])
	assert.Equal(t, "is required", details["name"])
	assert.Equal(t, "must be a valid URL", details["website"])
	assert.Equal(t, "must be greater than or equal to 0", details["age"])
}

func TestDetailsNilOnNil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}

func TestDetailsOpaqueError(t *testing.T) {
	details := ToDetails(assert.AnError)
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, details)
}
