// Package client calls the generation endpoint of a remote server and
// presents it as a sequence.Generator.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"codeberg.org/randseq/server/internal/sequence"
	"golang.org/x/time/rate"
)

const (
	// timeout for a single generate request
	requestTimeout = 15 * time.Second

	// client-side request budget, kept under the server's default limit
	requestsPerSecond = 2
	requestBurst      = 5
)

// manages HTTP requests to the generate REST API
type Client struct {
	endpoint   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ sequence.Generator = (*Client)(nil)

// creates a client for the server at endpoint, e.g. http://localhost:8080
func New(endpoint string) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
	}
}

// sends a generate request; validation failures come back as *sequence.Error
// with the server's kind and message
func (c *Client) Generate(ctx context.Context, req sequence.Request) (*sequence.Result, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	payload, err := json.Marshal(generateRequest{
		NumDigits:       req.Count,
		MinValue:        req.Min,
		MaxValue:        req.Max,
		DuplicateOption: string(req.Mode),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.endpoint + "/api/v1/generate"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp.StatusCode, body)
	}

	var result generateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &sequence.Result{
		Values:  result.Values,
		Display: result.GeneratedOutput,
	}, nil
}

// maps an error payload back to a typed error where the kind is known
func decodeError(status int, body []byte) error {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == "" {
		return fmt.Errorf("request failed with status %d: %s", status, string(body))
	}

	if status == http.StatusBadRequest && isValidationKind(sequence.Kind(errResp.Error)) {
		return &sequence.Error{Kind: sequence.Kind(errResp.Error), Message: errResp.Message}
	}

	return fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
}

func isValidationKind(kind sequence.Kind) bool {
	switch kind {
	case sequence.KindInvalidInput,
		sequence.KindNonPositiveCount,
		sequence.KindInvertedRange,
		sequence.KindRangeTooSmall,
		sequence.KindInvalidMode,
		sequence.KindCountTooLarge:
		return true
	}

	return false
}
