package youtube

import (
	"context"
	"net/url"
)

// ResolveUploadsPlaylist maps a channel ID to the channel's uploads playlist
// ID. The Data API exposes the uploads playlist on the channels endpoint at
// items[0].contentDetails.relatedPlaylists.uploads; a response missing any
// link of that chain fails with *APIError carrying the offending document.
func ResolveUploadsPlaylist(ctx context.Context, gw *Gateway, channelID string) (string, error) {
	doc, err := gw.Request(ctx, "channels", url.Values{
		"part":       {"contentDetails"},
		"maxResults": {"50"},
		"id":         {channelID},
	})
	if err != nil {
		return "", err
	}

	items, ok := doc["items"].([]any)
	if !ok || len(items) == 0 {
		return "", &APIError{Kind: FailureSchema, RawDoc: doc}
	}
	first, ok := items[0].(map[string]any)
	if !ok {
		return "", &APIError{Kind: FailureSchema, RawDoc: doc}
	}
	details, ok := first["contentDetails"].(map[string]any)
	if !ok {
		return "", &APIError{Kind: FailureSchema, RawDoc: doc}
	}
	related, ok := details["relatedPlaylists"].(map[string]any)
	if !ok {
		return "", &APIError{Kind: FailureSchema, RawDoc: doc}
	}
	uploads, ok := related["uploads"].(string)
	if !ok || uploads == "" {
		return "", &APIError{Kind: FailureSchema, RawDoc: doc}
	}

	return uploads, nil
}
