package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidation(t *testing.T) {
	err := Validation("status %q is not valid", "archived")

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, `validation error: status "archived" is not valid`, err.Error())
}

func TestNotFound(t *testing.T) {
	err := NotFound("application")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrValidation))
}

func TestPersistence(t *testing.T) {
	storeErr := errors.New(`insert or update on table "applications" violates foreign key constraint`)
	err := Persistence(storeErr)

	assert.True(t, errors.Is(err, ErrPersistence))
	assert.True(t, errors.Is(err, storeErr))
	assert.Contains(t, err.Error(), storeErr.Error())
	assert.Nil(t, Persistence(nil))
}
