package wts

import "wts/youtube"

// Error handling types exported for library users.
//
// Two error kinds surface from a pipeline run:
//
//   - *ChannelFetchError: the channel URL could not be resolved to an ID
//     (resolver tool failed or timed out). Carries the URL and diagnostics.
//   - *APIError: anything that went wrong talking to or interpreting the
//     YouTube Data API. Kind tags the cause (connection, HTTP status,
//     timeout, decode, schema, pagination limit) so callers can branch
//     with errors.As() instead of parsing messages.

// Type aliases for convenient error handling.
type (
	// ChannelFetchError wraps channel URL resolution failures.
	ChannelFetchError = youtube.ChannelFetchError
	// APIError wraps YouTube Data API failures.
	APIError = youtube.APIError
	// FailureKind classifies an APIError's cause.
	FailureKind = youtube.FailureKind
)

// Failure kinds re-exported from the youtube package.
const (
	FailureConnection      = youtube.FailureConnection
	FailureHTTPStatus      = youtube.FailureHTTPStatus
	FailureTimeout         = youtube.FailureTimeout
	FailureDecode          = youtube.FailureDecode
	FailureSchema          = youtube.FailureSchema
	FailurePaginationLimit = youtube.FailurePaginationLimit
)

// ErrNoTranscript indicates a video has no transcript in the requested
// language.
var ErrNoTranscript = youtube.ErrNoTranscript
