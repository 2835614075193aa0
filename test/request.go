package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/centavo-app/backend/internal/router"
	"github.com/stretchr/testify/require"
)

// Request performs a request against a fresh router instance and returns the
// response recorder.
//
// A string body is sent as-is, which allows tests to send intentionally
// broken JSON. Everything else is marshalled to JSON.
func Request(t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var buf *bytes.Buffer

	switch body := body.(type) {
	case string:
		buf = bytes.NewBufferString(body)
	default:
		marshalled, err := json.Marshal(body)
		require.NoError(t, err, "request body could not be marshalled to JSON")
		buf = bytes.NewBuffer(marshalled)
	}

	apiURL, ok := os.LookupEnv("API_URL")
	require.True(t, ok, "environment variable API_URL must be set")

	baseURL, err := url.Parse(apiURL)
	require.NoError(t, err, "environment variable API_URL must be a valid URL")

	r, teardown, err := router.Config(baseURL)
	require.NoError(t, err, "router could not be initialized")
	defer teardown()

	router.AttachRoutes(r.Group("/"))

	recorder := httptest.NewRecorder()
	req, err := http.NewRequest(method, reqURL, buf)
	require.NoError(t, err)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// DecodeResponse decodes the response body into the target. It fails the
// test when the body is not valid JSON for the target type.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	if err != nil {
		require.FailNow(t, "response could not be decoded", "body %q, error '%v', request ID %s", r.Body, err, r.Result().Header.Get("x-request-id"))
	}
}

// AssertHTTPStatus verifies that the response has one of the expected
// HTTP statuses.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
