package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, NotFound, KindOf(New(NotFound, "user not found")))
	assert.Equal(t, Conflict, KindOf(New(Conflict, "email already in use")))
	assert.Equal(t, Internal, KindOf(errors.New("plain")))
	assert.Equal(t, Internal, KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("update user: %w", New(Conflict, "email already in use"))
	assert.True(t, IsConflict(err))
	assert.False(t, IsNotFound(err))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(Internal, "failed to delete user", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to delete user")
	assert.Contains(t, err.Error(), "connection reset")
}
