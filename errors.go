package main

import "fmt"

// The poll cycle distinguishes its failure causes with typed errors so the
// driver can match on cause rather than on message text. All of them are
// recoverable: the loop logs, notifies best-effort, and retries.

// TransportError reports a network-level failure during a fetch: connection
// refused, timeout, DNS failure.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to homework API failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPStatusError reports a completed request that came back with a
// non-success status code.
type HTTPStatusError struct {
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("homework API returned status %d", e.StatusCode)
}

// DecodeError reports a response body that is not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("homework API response is not JSON: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ShapeError reports decoded JSON that lacks the expected structure.
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string { return e.Reason }

// UnknownStatusError reports a homework status outside the known vocabulary.
type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown homework status: %q", e.Status)
}
