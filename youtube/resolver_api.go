package youtube

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// channelIDRegex matches canonical YouTube channel IDs (UC + 22 chars).
var channelIDRegex = regexp.MustCompile(`UC[0-9A-Za-z_-]{22}`)

// APIResolver resolves channel IDs through the Data API instead of yt-dlp.
// Channel IDs and /channel/ URLs are resolved locally; handles and custom
// URLs go through a channel search. Useful when yt-dlp is not installed.
type APIResolver struct {
	service *youtube.Service
}

// NewAPIResolver creates a Data API backed channel resolver.
func NewAPIResolver(ctx context.Context, apiKey string) (*APIResolver, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &APIResolver{service: service}, nil
}

// ResolveChannelID converts a channel URL, handle, or bare ID to a channel ID.
func (r *APIResolver) ResolveChannelID(ctx context.Context, input string) (string, error) {
	// Already a channel ID
	if channelIDRegex.MatchString(input) && !strings.Contains(input, "/") {
		return channelIDRegex.FindString(input), nil
	}

	if strings.Contains(input, "youtube.com/channel/") {
		if id := extractChannelIDFromURL(input); id != "" {
			return id, nil
		}
	}

	if handle := handleFromURL(input); handle != "" {
		return r.searchChannelByHandle(ctx, handle)
	}

	return "", &ChannelFetchError{URL: input, Detail: "cannot resolve channel from input"}
}

// extractChannelIDFromURL extracts the channel ID from a /channel/ URL.
func extractChannelIDFromURL(url string) string {
	parts := strings.Split(url, "youtube.com/channel/")
	if len(parts) < 2 {
		return ""
	}
	id := strings.Split(parts[1], "/")[0]
	id = strings.Split(id, "?")[0]
	if channelIDRegex.MatchString(id) {
		return id
	}
	return ""
}

// handleFromURL extracts a channel handle ("@name") from a bare handle or
// a youtube.com/@name URL. Returns "" when the input carries no handle.
func handleFromURL(input string) string {
	if strings.HasPrefix(input, "@") {
		return input
	}
	i := strings.Index(input, "/@")
	if i < 0 {
		return ""
	}
	handle := input[i+1:]
	handle = strings.Split(handle, "/")[0]
	handle = strings.Split(handle, "?")[0]
	return handle
}

// searchChannelByHandle looks up a channel by its handle via a search call.
func (r *APIResolver) searchChannelByHandle(ctx context.Context, handle string) (string, error) {
	handle = strings.TrimPrefix(handle, "@")

	call := r.service.Search.List([]string{"id"}).
		Q(handle).
		Type("channel").
		MaxResults(1).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return "", &ChannelFetchError{URL: "@" + handle, Detail: err.Error(), Err: err}
	}
	if len(resp.Items) == 0 {
		return "", &ChannelFetchError{URL: "@" + handle, Detail: "channel not found"}
	}

	return resp.Items[0].Id.ChannelId, nil
}
