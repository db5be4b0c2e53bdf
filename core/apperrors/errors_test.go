package apperrors_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"country-currency/core/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestExternalServiceError(t *testing.T) {
	err := apperrors.NewExternal("restcountries", context.DeadlineExceeded)
	wrapped := fmt.Errorf("refresh failed: %w", err)

	assert.True(t, errors.Is(wrapped, apperrors.ErrExternalServiceUnavailable))
	assert.True(t, errors.Is(wrapped, context.DeadlineExceeded))
	assert.False(t, errors.Is(wrapped, apperrors.ErrNotFound))
	assert.Contains(t, err.Error(), "restcountries")

	var ext *apperrors.ExternalServiceError
	assert.True(t, errors.As(wrapped, &ext))
	assert.Equal(t, "restcountries", ext.Source)
}
