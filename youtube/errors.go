package youtube

import (
	"errors"
	"fmt"
)

// ErrNoTranscript indicates no transcript exists for the video in the
// requested language.
var ErrNoTranscript = errors.New("youtube: no transcript available")

// ChannelFetchError indicates a channel URL could not be resolved to a
// channel ID. Use errors.As() to extract it and inspect the failing URL:
//
//	var fetchErr *youtube.ChannelFetchError
//	if errors.As(err, &fetchErr) {
//		fmt.Printf("resolution failed for %s: %s\n", fetchErr.URL, fetchErr.Detail)
//	}
type ChannelFetchError struct {
	// URL is the channel URL that could not be resolved.
	URL string
	// Detail is the captured diagnostic output of the resolver,
	// or "unknown error" when nothing was captured.
	Detail string
	// Timeout reports whether resolution timed out rather than failed.
	Timeout bool
	// Err is the underlying error, if any.
	Err error
}

// Error returns a string representation of the resolution failure.
func (e *ChannelFetchError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("youtube: timed out while fetching channel ID for %s", e.URL)
	}
	return fmt.Sprintf("youtube: failed to fetch channel ID for %s: %s", e.URL, e.Detail)
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *ChannelFetchError) Unwrap() error { return e.Err }

// FailureKind classifies what went wrong talking to the YouTube Data API.
type FailureKind int

const (
	// FailureConnection is a transport-level failure before a response arrived.
	FailureConnection FailureKind = iota
	// FailureHTTPStatus is a non-2xx response from the API.
	FailureHTTPStatus
	// FailureTimeout means the API did not respond within the request deadline.
	FailureTimeout
	// FailureDecode means the response body was not valid JSON.
	FailureDecode
	// FailureSchema means the document decoded but lacked the expected shape.
	FailureSchema
	// FailurePaginationLimit means the collector's page cap was breached.
	FailurePaginationLimit
)

// String returns a short name for the failure kind.
func (k FailureKind) String() string {
	switch k {
	case FailureConnection:
		return "connection"
	case FailureHTTPStatus:
		return "http_status"
	case FailureTimeout:
		return "timeout"
	case FailureDecode:
		return "decode"
	case FailureSchema:
		return "schema"
	case FailurePaginationLimit:
		return "pagination_limit"
	}
	return "unknown"
}

// APIError describes a failed interaction with the YouTube Data API.
// Kind tags the cause; the remaining fields are populated per kind so
// callers can branch without parsing messages:
//
//	var apiErr *youtube.APIError
//	if errors.As(err, &apiErr) && apiErr.Kind == youtube.FailureHTTPStatus {
//		fmt.Printf("API returned %d\n", apiErr.StatusCode)
//	}
type APIError struct {
	// Kind classifies the failure.
	Kind FailureKind
	// StatusCode is the HTTP status code, set for FailureHTTPStatus.
	StatusCode int
	// RawBody is the unparseable response body, set for FailureDecode.
	RawBody string
	// RawDoc is the decoded document that failed shape checks,
	// set for FailureSchema.
	RawDoc map[string]any
	// Err is the underlying error, set for FailureConnection and
	// FailureTimeout.
	Err error
}

// Error returns a string representation of the API failure.
func (e *APIError) Error() string {
	switch e.Kind {
	case FailureConnection:
		return fmt.Sprintf("youtube: api connection failed: %v", e.Err)
	case FailureHTTPStatus:
		return fmt.Sprintf("youtube: api returned status %d", e.StatusCode)
	case FailureTimeout:
		return "youtube: api took too long to respond"
	case FailureDecode:
		return fmt.Sprintf("youtube: api response is not valid JSON: %s", e.RawBody)
	case FailureSchema:
		return fmt.Sprintf("youtube: api response has unexpected shape: %v", e.RawDoc)
	case FailurePaginationLimit:
		return "youtube: pagination limit exceeded"
	}
	return "youtube: api error"
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *APIError) Unwrap() error { return e.Err }
