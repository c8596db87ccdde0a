package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// StatusSource abstracts the homework-review API for the poller, so tests
// can substitute a fake without a live endpoint.
type StatusSource interface {
	Fetch(ctx context.Context, from int64) (any, error)
}

// PracticumClient queries the Practicum homework-status API.
type PracticumClient struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

func NewPracticumClient(endpoint, token string) *PracticumClient {
	return &PracticumClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		endpoint:   endpoint,
		token:      token,
	}
}

// Fetch issues one authenticated GET for status changes since the given
// Unix timestamp and returns the decoded JSON body. Shape validation of the
// body is the caller's job; Fetch only guarantees it is valid JSON. A failed
// request never yields a usable response: every failure propagates
// immediately as one of TransportError, HTTPStatusError or DecodeError.
func (c *PracticumClient) Fetch(ctx context.Context, from int64) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building homework API request: %w", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	query := req.URL.Query()
	query.Set("from_date", strconv.FormatInt(from, 10))
	req.URL.RawQuery = query.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		transportErr := &TransportError{Err: err}
		ErrorLogger.Printf("Error reaching homework API: %v", err)
		return nil, transportErr
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		statusErr := &HTTPStatusError{StatusCode: resp.StatusCode}
		ErrorLogger.Printf("Homework API request rejected: %v", statusErr)
		return nil, statusErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		transportErr := &TransportError{Err: err}
		ErrorLogger.Printf("Error reading homework API response: %v", err)
		return nil, transportErr
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		decodeErr := &DecodeError{Err: err}
		ErrorLogger.Printf("Homework API response is not JSON: %v", err)
		return nil, decodeErr
	}

	return decoded, nil
}
