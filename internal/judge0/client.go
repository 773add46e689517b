// Package judge0 is a thin client for the Judge0 code-execution API with
// sequential host failover and result polling.
package judge0

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrNotConfigured is returned when no API key is set; no host is contacted.
var ErrNotConfigured = errors.New("judge0 API key not configured")

// UpstreamError reports that every candidate host failed
type UpstreamError struct {
	LastError string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("failed to reach judge0: %s", e.LastError)
}

// Status id semantics: 1-2 in progress, 3 accepted, 5 time limit exceeded,
// 6 compile error, 7-12 runtime error family.
type Status struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// Terminal reports whether the submission has finished processing
func (s *Status) Terminal() bool {
	return s != nil && s.ID > 2
}

// Result is a finished (or timed-out) submission with outputs decoded
type Result struct {
	Status        *Status `json:"status"`
	Stdout        string  `json:"stdout"`
	Stderr        string  `json:"stderr"`
	CompileOutput string  `json:"compile_output"`
	Time          string  `json:"time"`
	Memory        int     `json:"memory"`
}

// submission is the raw wire shape; outputs are base64-encoded
type submission struct {
	Token         string  `json:"token"`
	Status        *Status `json:"status"`
	Stdout        string  `json:"stdout"`
	Stderr        string  `json:"stderr"`
	CompileOutput string  `json:"compile_output"`
	Time          string  `json:"time"`
	Memory        int     `json:"memory"`
}

const resultFields = "stdout,stderr,compile_output,status,time,memory"

// Client talks to Judge0 through an ordered list of candidate hosts
type Client struct {
	apiKey     string
	hosts      []string
	httpClient *http.Client

	// PollInterval and MaxPolls bound the wait for async results
	PollInterval time.Duration
	MaxPolls     int
}

// NewClient creates a Client. Hosts are base URLs tried in order; duplicates
// are dropped.
func NewClient(apiKey string, hosts []string) *Client {
	return &Client{
		apiKey:       apiKey,
		hosts:        dedup(hosts),
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		PollInterval: 1500 * time.Millisecond,
		MaxPolls:     10,
	}
}

func dedup(hosts []string) []string {
	seen := make(map[string]bool, len(hosts))
	out := make([]string, 0, len(hosts))
	for _, h := range hosts {
		if h != "" && !seen[h] {
			seen[h] = true
			out = append(out, h)
		}
	}
	return out
}

// Run submits code and blocks until a terminal status, the polling budget is
// exhausted, or every host fails. Hosts answering 403/429 or errors are
// skipped in order.
func (c *Client) Run(ctx context.Context, languageID int, code, stdin string) (*Result, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	var raw *submission
	var activeHost string
	lastError := "no hosts configured"

	for _, host := range c.hosts {
		sub, status, err := c.submit(ctx, host, languageID, code, stdin)
		if err != nil {
			lastError = err.Error()
			continue
		}
		if status == http.StatusForbidden {
			lastError = fmt.Sprintf("403 Forbidden from %s", host)
			continue
		}
		if status == http.StatusTooManyRequests {
			lastError = "rate limit exceeded, please wait a moment and try again"
			continue
		}
		if status < 200 || status >= 300 {
			lastError = fmt.Sprintf("unexpected status %d from %s", status, host)
			continue
		}
		raw = sub
		activeHost = host
		break
	}

	if raw == nil {
		return nil, &UpstreamError{LastError: lastError}
	}

	// The synchronous wait=true submission can still come back queued or
	// processing; poll the same host for a terminal status.
	if raw.Token != "" && !raw.Status.Terminal() {
		raw = c.poll(ctx, activeHost, raw)
	}

	return &Result{
		Status:        raw.Status,
		Stdout:        decodeB64(raw.Stdout),
		Stderr:        decodeB64(raw.Stderr),
		CompileOutput: decodeB64(raw.CompileOutput),
		Time:          raw.Time,
		Memory:        raw.Memory,
	}, nil
}

func (c *Client) submit(ctx context.Context, host string, languageID int, code, stdin string) (*submission, int, error) {
	body, err := json.Marshal(map[string]interface{}{
		"language_id": languageID,
		"source_code": base64.StdEncoding.EncodeToString([]byte(code)),
		"stdin":       base64.StdEncoding.EncodeToString([]byte(stdin)),
	})
	if err != nil {
		return nil, 0, err
	}

	submitURL := fmt.Sprintf("%s/submissions?base64_encoded=true&wait=true&fields=%s", host, resultFields)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, submitURL, bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	c.setHeaders(req, host)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, resp.StatusCode, nil
	}

	var sub submission
	if err := json.NewDecoder(resp.Body).Decode(&sub); err != nil {
		return nil, resp.StatusCode, err
	}
	return &sub, resp.StatusCode, nil
}

// poll fetches the submission by token until terminal or the budget runs out,
// returning the last result fetched either way
func (c *Client) poll(ctx context.Context, host string, last *submission) *submission {
	token := last.Token
	for i := 0; i < c.MaxPolls; i++ {
		time.Sleep(c.PollInterval)

		getURL := fmt.Sprintf("%s/submissions/%s?base64_encoded=true&fields=%s", host, token, resultFields)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, getURL, nil)
		if err != nil {
			continue
		}
		c.setHeaders(req, host)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			continue
		}
		var sub submission
		decodeErr := json.NewDecoder(resp.Body).Decode(&sub)
		resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 || decodeErr != nil {
			continue
		}
		last = &sub
		if last.Status.Terminal() {
			break
		}
	}
	return last
}

func (c *Client) setHeaders(req *http.Request, host string) {
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	if u, err := url.Parse(host); err == nil {
		req.Header.Set("X-RapidAPI-Host", u.Host)
	}
}

func decodeB64(s string) string {
	if s == "" {
		return ""
	}
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return s
	}
	return string(decoded)
}
