package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/careernest/backend/internal/judge0"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCompiler(t *testing.T, client *judge0.Client, body string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return NewCompilerHandler(client).Run(c)
}

func TestCompilerRunValidation(t *testing.T) {
	client := judge0.NewClient("key", []string{"http://127.0.0.1:0"})

	t.Run("missing code", func(t *testing.T) {
		err := runCompiler(t, client, `{"language":"python"}`)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Equal(t, "Code and language are required", httpErr.Message)
	})

	t.Run("unsupported language", func(t *testing.T) {
		err := runCompiler(t, client, `{"language":"cobol","code":"x"}`)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Equal(t, "Unsupported language: cobol", httpErr.Message)
	})
}

func TestCompilerRunNotConfigured(t *testing.T) {
	client := judge0.NewClient("", []string{"http://127.0.0.1:0"})

	err := runCompiler(t, client, `{"language":"python","code":"print(1)"}`)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, httpErr.Code)
	assert.Equal(t, "Code execution service is not configured", httpErr.Message)
}

func TestCompilerRunReportsLastUpstreamError(t *testing.T) {
	rateLimited := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer rateLimited.Close()

	client := judge0.NewClient("key", []string{rateLimited.URL})
	err := runCompiler(t, client, `{"language":"python","code":"print(1)"}`)

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, httpErr.Code)

	msg, ok := httpErr.Message.(string)
	require.True(t, ok)
	assert.Contains(t, msg, "Failed to reach the code execution service. Last error:")
	assert.Contains(t, msg, "rate limit")
}
