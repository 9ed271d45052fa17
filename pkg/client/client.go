package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/firewatch/wildfire-uav/pkg/logger"
	"github.com/firewatch/wildfire-uav/pkg/models"
)

// Firewatch is the client for the wildfire exemplar's monitor and
// execute endpoints. It performs no retries; a non-success status on
// either endpoint is returned as a TransportError and aborts the
// current adaptation cycle.
type Firewatch struct {
	baseURL    string
	httpClient *http.Client
}

// Config holds the configuration for the Firewatch client
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// TransportError reports a non-success response from the monitor or
// execute endpoint. The operation name and response body are kept so
// the failing cycle can be diagnosed.
type TransportError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: HTTP %d: %s", e.Op, e.StatusCode, e.Body)
}

// NewClient creates a new Firewatch client with the given configuration
func NewClient(cfg Config) (*Firewatch, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Firewatch{
		baseURL: u.String(),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Monitor fetches the current simulation state from the /monitor
// endpoint and normalizes it into a Snapshot
func (c *Firewatch) Monitor(ctx context.Context) (*models.Snapshot, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/monitor", nil)
	if err != nil {
		return nil, err
	}
	defer closeBody(resp.Body)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read monitor response: %w", err)
	}

	return models.ParseMonitorResponse(data)
}

// Execute delivers a single adjustment to the /execute endpoint
func (c *Firewatch) Execute(ctx context.Context, adj models.Adjustment) error {
	resp, err := c.doRequest(ctx, http.MethodPut, "/execute", adj)
	if err != nil {
		return err
	}
	closeBody(resp.Body)
	return nil
}

// ValidateConnection tests reachability of the exemplar by fetching a
// monitor snapshot
func (c *Firewatch) ValidateConnection(ctx context.Context) error {
	_, err := c.Monitor(ctx)
	return err
}

// doRequest performs an HTTP request with JSON encoding and error handling
func (c *Firewatch) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	fullURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer closeBody(resp.Body)
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, &TransportError{
			Op:         method + " " + path,
			StatusCode: resp.StatusCode,
			Body:       string(bodyBytes),
		}
	}

	return resp, nil
}

func closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		logger.Errorf("failed to close response body: %v", err)
	}
}
