// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/restaurants/internal/platform/apperr"
)

/*
TestAppError_Constructors checks status and code mapping for every constructor.
*/
func TestAppError_Constructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperr.AppError
		status int
		code   string
	}{
		{"not_found", apperr.NotFound("Restaurant"), http.StatusNotFound, apperr.CodeNotFound},
		{"validation", apperr.ValidationError("bad"), http.StatusBadRequest, apperr.CodeValidation},
		{"rate_limited", apperr.RateLimited(3), http.StatusTooManyRequests, apperr.CodeRateLimited},
		{"internal", apperr.Internal(errors.New("boom")), http.StatusInternalServerError, apperr.CodeInternal},
		{"unavailable", apperr.ServiceUnavailable("down", nil), http.StatusServiceUnavailable, apperr.CodeServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}

	assert.Equal(t, "Restaurant not found", apperr.NotFound("Restaurant").Error())
}

/*
TestAppError_Chain verifies that wrapped AppErrors are still discoverable.
*/
func TestAppError_Chain(t *testing.T) {
	cause := errors.New("disk gone")
	wrapped := fmt.Errorf("favorites: %w", apperr.Internal(cause))

	require.True(t, apperr.IsAppError(wrapped))
	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.ErrorIs(t, ae, cause)

	assert.Nil(t, apperr.As(cause))
	assert.True(t, apperr.IsNotFound(fmt.Errorf("lookup: %w", apperr.NotFound("Restaurant"))))
	assert.False(t, apperr.IsNotFound(cause))
}
