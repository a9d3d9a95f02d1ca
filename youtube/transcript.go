package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTimedtextBaseURL = "https://www.youtube.com/api/timedtext"
	defaultTimedtextTimeout = 30 * time.Second
)

// TranscriptFetcher fetches the transcript text of a single video in a
// preferred language.
type TranscriptFetcher interface {
	// FetchTranscript returns the transcript text for the video,
	// or ErrNoTranscript when none exists in the requested language.
	FetchTranscript(ctx context.Context, videoID, language string) (string, error)
}

// TimedtextClient fetches transcripts from YouTube's timedtext API.
type TimedtextClient struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
	logger  *slog.Logger
}

// TimedtextOption customizes a TimedtextClient.
type TimedtextOption func(*TimedtextClient)

// WithTimedtextBaseURL overrides the timedtext endpoint, used in tests.
func WithTimedtextBaseURL(baseURL string) TimedtextOption {
	return func(tc *TimedtextClient) { tc.baseURL = baseURL }
}

// WithTimedtextLogger sets the logger for transcript fetches.
func WithTimedtextLogger(logger *slog.Logger) TimedtextOption {
	return func(tc *TimedtextClient) { tc.logger = logger }
}

// NewTimedtextClient creates a timedtext API client.
func NewTimedtextClient(opts ...TimedtextOption) *TimedtextClient {
	tc := &TimedtextClient{
		client:  &http.Client{},
		baseURL: defaultTimedtextBaseURL,
		timeout: defaultTimedtextTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(tc)
	}
	return tc
}

// timedtextResponse is the JSON shape of a fmt=json3 timedtext reply.
type timedtextResponse struct {
	Events []timedtextEvent `json:"events"`
}

type timedtextEvent struct {
	Segs []timedtextSegment `json:"segs"`
}

type timedtextSegment struct {
	UTF8 string `json:"utf8"`
}

// FetchTranscript fetches the captions of one video and joins them into
// plain text. Language defaults to "en" when empty.
func (tc *TimedtextClient) FetchTranscript(ctx context.Context, videoID, language string) (string, error) {
	if language == "" {
		language = "en"
	}

	params := url.Values{}
	params.Set("v", videoID)
	params.Set("lang", language)
	params.Set("fmt", "json3")

	ctx, cancel := context.WithTimeout(ctx, tc.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tc.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", &APIError{Kind: FailureConnection, Err: err}
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", &APIError{Kind: FailureTimeout, Err: err}
		}
		return "", &APIError{Kind: FailureConnection, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNoTranscript
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{Kind: FailureHTTPStatus, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &APIError{Kind: FailureConnection, Err: err}
	}

	// An empty body means no captions exist for this language.
	if len(strings.TrimSpace(string(body))) == 0 {
		return "", ErrNoTranscript
	}

	var decoded timedtextResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", &APIError{Kind: FailureDecode, RawBody: string(body), Err: err}
	}

	var sb strings.Builder
	for _, event := range decoded.Events {
		if len(event.Segs) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		for _, seg := range event.Segs {
			sb.WriteString(seg.UTF8)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrNoTranscript
	}

	tc.logger.Debug("fetched transcript", "video_id", videoID, "lang", language, "chars", len(text))
	return text, nil
}
