// Package api implements the JSON HTTP client for the MMSS backend.
// All endpoints live under a fixed /api prefix on the configured base URL.
// The client performs exactly one request per call: no retries, no internal
// timeout, no caching. Cancellation is the caller's context.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"mmssconsole/internal/logging"
	"mmssconsole/internal/types"
)

// Prefix is the fixed path prefix the server nests the API router under.
const Prefix = "/api"

// Error is a non-2xx response from the backend. The message is the server's
// response body verbatim, or the HTTP status text when the body is empty,
// so workflows can surface it to the operator unchanged.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string { return e.Message }

// Client issues requests against one MMSS server.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a client for the given base URL. A zero timeout leaves
// requests unbounded, matching the dashboard's no-timeout model.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// Call issues one JSON request to path (relative to the /api prefix) and
// returns the raw response body. Content-Type is always application/json,
// merged with and overridable by the supplied headers. A non-nil body is
// serialized as JSON.
func (c *Client) Call(ctx context.Context, method, path string, body interface{}, headers map[string]string) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+Prefix+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	timer := logging.StartTimer(logging.CategoryAPI, method+" "+path)
	resp, err := c.httpc.Do(req)
	timer.Stop()
	if err != nil {
		logging.APIDebug("%s %s transport failure: %v", method, path, err)
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(data))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		logging.APIDebug("%s %s -> %d: %s", method, path, resp.StatusCode, msg)
		return nil, &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	logging.APIDebug("%s %s -> %d (%d bytes)", method, path, resp.StatusCode, len(data))
	return json.RawMessage(data), nil
}

// Metrics fetches the current metrics snapshot. Raw preserves the full
// response body for verbatim rendering.
func (c *Client) Metrics(ctx context.Context) (*types.MetricsSnapshot, error) {
	raw, err := c.Call(ctx, http.MethodGet, "/metrics", nil, nil)
	if err != nil {
		return nil, err
	}
	var snap types.MetricsSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode metrics: %w", err)
	}
	snap.Raw = raw
	return &snap, nil
}

// Tasks fetches the task list in server order.
func (c *Client) Tasks(ctx context.Context) ([]types.Task, error) {
	raw, err := c.Call(ctx, http.MethodGet, "/tasks", nil, nil)
	if err != nil {
		return nil, err
	}
	var tasks []types.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode task list: %w", err)
	}
	return tasks, nil
}

// SubmitTask submits a task blueprint, optionally executing it immediately.
func (c *Client) SubmitTask(ctx context.Context, sub types.TaskSubmission) (json.RawMessage, error) {
	return c.Call(ctx, http.MethodPost, "/tasks", sub, nil)
}

// TaskStatus fetches the status of a single task by id.
func (c *Client) TaskStatus(ctx context.Context, id string) (*types.Task, error) {
	raw, err := c.Call(ctx, http.MethodGet, "/tasks/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	var task types.Task
	if err := json.Unmarshal(raw, &task); err != nil {
		return nil, fmt.Errorf("failed to decode task status: %w", err)
	}
	return &task, nil
}

// VisualizationPacket fetches the current visualization packet.
func (c *Client) VisualizationPacket(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, http.MethodGet, "/visualization/packet", nil, nil)
}

// Query forwards a natural-language query to the blueprint generator.
func (c *Client) Query(ctx context.Context, query string) (json.RawMessage, error) {
	return c.Call(ctx, http.MethodPost, "/llm/query", types.QueryRequest{Query: query}, nil)
}

// ResearchCampaign starts a multi-step research campaign.
func (c *Client) ResearchCampaign(ctx context.Context, req types.CampaignRequest) (json.RawMessage, error) {
	return c.Call(ctx, http.MethodPost, "/llm/research-campaign", req, nil)
}

// Health probes the server health endpoint.
func (c *Client) Health(ctx context.Context) (*types.HealthStatus, error) {
	raw, err := c.Call(ctx, http.MethodGet, "/health", nil, nil)
	if err != nil {
		return nil, err
	}
	var hs types.HealthStatus
	if err := json.Unmarshal(raw, &hs); err != nil {
		return nil, fmt.Errorf("failed to decode health status: %w", err)
	}
	return &hs, nil
}
