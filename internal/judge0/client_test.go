package judge0

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func newTestClient(apiKey string, hosts ...string) *Client {
	c := NewClient(apiKey, hosts)
	c.PollInterval = time.Millisecond
	c.MaxPolls = 3
	return c
}

func TestRunWithoutAPIKey(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := newTestClient("", server.URL)
	_, err := client.Run(context.Background(), 71, "print(1)", "")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, called, "no host should be contacted without a key")
}

func TestRunDecodesOutputs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, b64("print(1)"), body["source_code"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": map[string]interface{}{"id": 3, "description": "Accepted"},
			"stdout": b64("1\n"),
			"time":   "0.01",
			"memory": 1024,
		})
	}))
	defer server.Close()

	client := newTestClient("test-key", server.URL)
	result, err := client.Run(context.Background(), 71, "print(1)", "")
	require.NoError(t, err)
	assert.Equal(t, 3, result.Status.ID)
	assert.Equal(t, "1\n", result.Stdout)
	assert.Equal(t, "0.01", result.Time)
	assert.Equal(t, 1024, result.Memory)
}

func TestRunFailsOverOnForbidden(t *testing.T) {
	blocked := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer blocked.Close()

	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": map[string]interface{}{"id": 3, "description": "Accepted"},
			"stdout": b64("ok"),
		})
	}))
	defer healthy.Close()

	client := newTestClient("test-key", blocked.URL, healthy.URL)
	result, err := client.Run(context.Background(), 71, "print(1)", "")
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Stdout)
}

func TestRunAllHostsFail(t *testing.T) {
	rateLimited := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer rateLimited.Close()

	client := newTestClient("test-key", rateLimited.URL)
	_, err := client.Run(context.Background(), 71, "print(1)", "")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Contains(t, upstream.LastError, "rate limit")
}

func TestRunPollsUntilTerminal(t *testing.T) {
	polls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"token":  "abc123",
				"status": map[string]interface{}{"id": 2, "description": "Processing"},
			})
			return
		}

		assert.Contains(t, r.URL.Path, "abc123")
		polls++
		status := map[string]interface{}{"id": 2, "description": "Processing"}
		stdout := ""
		if polls >= 2 {
			status = map[string]interface{}{"id": 3, "description": "Accepted"}
			stdout = b64("done")
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"token":  "abc123",
			"status": status,
			"stdout": stdout,
		})
	}))
	defer server.Close()

	client := newTestClient("test-key", server.URL)
	result, err := client.Run(context.Background(), 71, "print(1)", "")
	require.NoError(t, err)
	assert.Equal(t, 2, polls)
	assert.Equal(t, 3, result.Status.ID)
	assert.Equal(t, "done", result.Stdout)
}

func TestRunKeepsInvalidBase64Verbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": map[string]interface{}{"id": 6, "description": "Compilation Error"},
			"compile_output": "not base64 at all!!",
		})
	}))
	defer server.Close()

	client := newTestClient("test-key", server.URL)
	result, err := client.Run(context.Background(), 71, "print(1)", "")
	require.NoError(t, err)
	assert.Equal(t, "not base64 at all!!", result.CompileOutput)
}

func TestLanguageID(t *testing.T) {
	id, ok := LanguageID("python")
	assert.True(t, ok)
	assert.Equal(t, 71, id)

	_, ok = LanguageID("cobol")
	assert.False(t, ok)
}

func TestLanguagesStableOrder(t *testing.T) {
	langs := Languages()
	require.NotEmpty(t, langs)
	assert.Equal(t, Languages(), langs)
	for _, l := range langs {
		id, ok := LanguageID(l.Name)
		assert.True(t, ok)
		assert.Equal(t, l.ID, id)
	}
}
