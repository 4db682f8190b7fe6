package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"hotelfin/shared/failure"
	"hotelfin/transport/http/response"
)

func TestWithError(t *testing.T) {
	t.Run("failure keeps its code and message", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.WithError(rec, failure.NotFound("Supply not found."))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Supply not found."}`, rec.Body.String())
	})

	t.Run("plain error degrades to a generic 500", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.WithError(rec, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"An unexpected error occurred."}`, rec.Body.String())
	})
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"id": "row-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"row-1"}`, rec.Body.String())
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithMessage(rec, http.StatusOK, "Supply successfully deleted.")

	assert.JSONEq(t, `{"message":"Supply successfully deleted."}`, rec.Body.String())
}
