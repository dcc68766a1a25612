package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSuccess(t *testing.T) {
	w := httptest.NewRecorder()

	JSONSuccess(w, map[string]string{"key": "value"}, map[string]int{"total": 10})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response SuccessResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Success)
	assert.NotNil(t, response.Data)
}

func TestJSONSuccessWithRequest_MergesRequestID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/books", nil)
	r = r.WithContext(ContextWithRequestID(r.Context(), "req-1"))
	w := httptest.NewRecorder()

	JSONSuccessWithRequest(r, w, []string{}, map[string]interface{}{"total": 0})

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, "req-1", meta["request_id"])
	assert.Equal(t, float64(0), meta["total"])
	assert.Equal(t, []interface{}{}, body["data"])
}

func TestJSONSuccessWithRequest_NoMeta(t *testing.T) {
	w := httptest.NewRecorder()

	JSONSuccessWithRequest(httptest.NewRequest(http.MethodGet, "/", nil), w, "x", nil)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	_, ok := body["meta"]
	assert.False(t, ok)
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	details := []ErrorDetail{{Field: "title", Message: "title is required"}}

	JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.False(t, response.Success)
	assert.Equal(t, "VALIDATION_ERROR", response.Error.Code)
	assert.Equal(t, "Invalid input", response.Error.Message)
	assert.Equal(t, details, response.Error.Details)
}

func TestJSONSuccessNoContent(t *testing.T) {
	w := httptest.NewRecorder()
	JSONSuccessNoContent(w)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())
}
