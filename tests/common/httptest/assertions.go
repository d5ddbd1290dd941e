//go:build unit

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// SubmissionBody mirrors the stable response contract of the submission
// endpoints.
type SubmissionBody struct {
	OK     bool              `json:"ok"`
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func AssertOKResponse(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()

	body := decodeBody(t, w)
	assert.Equal(t, 200, w.Code,
		fmt.Sprintf("Expected status 200, got %d. Response: %s", w.Code, w.Body.String()))
	assert.True(t, body.OK)
	assert.Empty(t, body.Error)
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedCode string) SubmissionBody {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	body := decodeBody(t, w)
	assert.False(t, body.OK)
	if expectedCode != "" {
		assert.Equal(t, expectedCode, body.Error)
	}
	return body
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) SubmissionBody {
	t.Helper()

	var body SubmissionBody
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	return body
}
