package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"rental/shared/failure"
	"rental/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) response.Error {
	t.Helper()

	var body response.Error
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body
}

func TestWithError(t *testing.T) {
	t.Run("wrapped failure keeps code and message", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		err := fmt.Errorf("create reservation: %w", failure.Wrap(http.StatusConflict, errors.New("dates taken")))

		response.WithError(recorder, err)

		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Equal(t, "dates taken", *decodeError(t, recorder).Error)
	})

	t.Run("validation fields", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		response.WithError(recorder, failure.Validation("invalid", map[string]string{"check_out": "must be after check-in"}))

		body := decodeError(t, recorder)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "must be after check-in", body.Fields["check_out"])
	})

	t.Run("internal error hides cause", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		response.WithError(recorder, errors.New("pq: password authentication failed"))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), *decodeError(t, recorder).Error)
		assert.Empty(t, recorder.Header().Get("Retry-After"))
	})

	t.Run("store unavailable asks the client to retry", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		response.WithError(recorder, failure.Wrap(http.StatusServiceUnavailable, errors.New("reservation store unavailable")))

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		assert.Equal(t, "1", recorder.Header().Get("Retry-After"))
	})
}

func TestWithMessage(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithRequestLimitExceeded(recorder)

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, recorder.Body.String())
}

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusCreated, map[string]string{"id": "r-1"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"data":{"id":"r-1"}}`, recorder.Body.String())
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
}
