package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessageFormat(t *testing.T) {
	plain := InvalidInput("text is empty")
	assert.Equal(t, "invalid_input: text is empty", plain.Error())

	wrapped := Configuration("failed to read file", errors.New("no such file"))
	assert.Equal(t, "configuration: failed to read file: no such file", wrapped.Error())
}

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		err    *Error
		status int
	}{
		{InvalidInput("bad"), http.StatusBadRequest},
		{TreeSearch("lost"), http.StatusUnprocessableEntity},
		{Normalization("nan"), http.StatusInternalServerError},
		{KeywordMatch("bad dict", nil), http.StatusInternalServerError},
		{Configuration("bad config", nil), http.StatusInternalServerError},
		{Internal("boom", nil), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.HTTPStatus(), "type %s", tt.err.Type)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Internal("wrapper", cause)

	assert.True(t, errors.Is(err, cause))

	var structured *Error
	require.True(t, errors.As(fmt.Errorf("outer: %w", err), &structured))
	assert.Equal(t, TypeInternal, structured.Type)
}

func TestWithContext(t *testing.T) {
	err := InvalidInput("too long").
		WithContext("word_count", 80).
		WithContext("max_words", 50)

	assert.Equal(t, 80, err.Context["word_count"])
	assert.Equal(t, 50, err.Context["max_words"])

	resp := err.ToResponse()
	assert.Equal(t, "too long", resp.Error)
	assert.Equal(t, TypeInvalidInput, resp.Type)
	assert.Equal(t, 80, resp.Context["word_count"])
}

func TestAsStructuredError(t *testing.T) {
	original := TreeSearch("node missing")
	assert.Same(t, original, AsStructuredError(original))

	wrapped := AsStructuredError(errors.New("plain"))
	assert.Equal(t, TypeInternal, wrapped.Type)

	assert.Nil(t, AsStructuredError(nil))
}

func TestIsType(t *testing.T) {
	err := InvalidInput("bad")
	assert.True(t, IsType(err, TypeInvalidInput))
	assert.False(t, IsType(err, TypeTreeSearch))
	assert.True(t, IsType(fmt.Errorf("wrapped: %w", err), TypeInvalidInput))
	assert.False(t, IsType(errors.New("plain"), TypeInvalidInput))
	assert.False(t, IsType(nil, TypeInvalidInput))
}
