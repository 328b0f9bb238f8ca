package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumit9819/digital-marketing-cms/internal/apperr"
)

func TestValidateStruct_SingleField(t *testing.T) {
	err := validateStruct(ContactInput{Name: "Ann", Email: "ann@example.com"})
	require.True(t, errors.Is(err, apperr.ErrInvalid))

	e := apperr.As(err)
	assert.Equal(t, "message is required", e.Message)
	assert.Equal(t, map[string]string{"message": "is required"}, e.Fields)
}

func TestValidateStruct_MultipleFields(t *testing.T) {
	err := validateStruct(ContactInput{Email: "bad"})
	require.True(t, errors.Is(err, apperr.ErrInvalid))

	e := apperr.As(err)
	assert.Equal(t, "validation failed", e.Message)
	assert.Equal(t, "is required", e.Fields["name"])
	assert.Equal(t, "must be a valid email address", e.Fields["email"])
	assert.Equal(t, "is required", e.Fields["message"])
}

func TestValidateStruct_Messages(t *testing.T) {
	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}

	err := validateStruct(CreatePostInput{Title: string(long)})
	assert.Equal(t, "must be at most 255 characters", apperr.As(err).Fields["title"])

	err = validateStruct(CreatePostInput{Title: "ok", Status: "archived"})
	assert.Equal(t, "must be one of: draft, published", apperr.As(err).Fields["status"])

	assert.NoError(t, validateStruct(CreatePostInput{Title: "ok", Status: "published"}))
}

func TestBlankAndTrimPtr(t *testing.T) {
	assert.False(t, blank(nil))
	assert.True(t, blank(strPtr("  ")))
	assert.False(t, blank(strPtr(" x ")))

	assert.Nil(t, trimPtr(nil))
	assert.Equal(t, "x", *trimPtr(strPtr(" x ")))
}
