// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/restaurants/internal/platform/apperr"
	"github.com/taibuivan/restaurants/internal/platform/respond"
	"github.com/taibuivan/restaurants/pkg/pagination"
)

/*
TestOK_Envelope verifies the success envelope shape.
*/
func TestOK_Envelope(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.OK(recorder, map[string]int{"total": 3})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"data":{"total":3}}`, recorder.Body.String())
}

/*
TestPaginated_Envelope verifies the meta block is emitted.
*/
func TestPaginated_Envelope(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Paginated(recorder, []string{"a"}, pagination.NewMeta(1, 1, 2))

	var body struct {
		Data []string        `json:"data"`
		Meta pagination.Meta `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, []string{"a"}, body.Data)
	assert.Equal(t, 2, body.Meta.TotalPages)
}

/*
TestError_Mapping checks AppError passthrough and internal error masking.
*/
func TestError_Mapping(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	t.Run("app_error", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		respond.Error(recorder, request, apperr.NotFound("Restaurant"))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.JSONEq(t, `{"error":"Restaurant not found","code":"NOT_FOUND"}`, recorder.Body.String())
	})

	t.Run("plain_error_is_masked", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		respond.Error(recorder, request, errors.New("sqlite: database is locked"))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "sqlite")
		assert.Contains(t, recorder.Body.String(), apperr.CodeInternal)
	})
}
