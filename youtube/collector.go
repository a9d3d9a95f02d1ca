package youtube

import (
	"context"
	"log/slog"
	"net/url"
)

// Collector aggregates every video ID in a playlist by walking the
// playlistItems endpoint page by page.
type Collector struct {
	// Gateway issues the playlistItems requests.
	Gateway *Gateway

	// MaxPages caps the number of pages fetched in one run. 0 means no cap,
	// which follows the nextPageToken chain until the API stops issuing
	// tokens. A breached cap fails with FailurePaginationLimit.
	MaxPages int

	// Logger receives page progress records. Defaults to slog.Default().
	Logger *slog.Logger
}

// CollectVideoIDs fetches every video ID in the playlist, preserving
// playlist order. The run is all-or-nothing: a failure on any page discards
// IDs already collected from earlier pages.
func (c *Collector) CollectVideoIDs(ctx context.Context, playlistID string) ([]string, error) {
	var ids []string
	pageToken := ""

	for page := 1; ; page++ {
		if c.MaxPages > 0 && page > c.MaxPages {
			return nil, &APIError{Kind: FailurePaginationLimit}
		}

		params := url.Values{
			"part":       {"contentDetails"},
			"maxResults": {"50"},
			"playlistId": {playlistID},
		}
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		doc, err := c.Gateway.Request(ctx, "playlistItems", params)
		if err != nil {
			return nil, err
		}

		items, ok := doc["items"].([]any)
		if !ok {
			return nil, &APIError{Kind: FailureSchema, RawDoc: doc}
		}
		for _, item := range items {
			entry, ok := item.(map[string]any)
			if !ok {
				return nil, &APIError{Kind: FailureSchema, RawDoc: doc}
			}
			details, ok := entry["contentDetails"].(map[string]any)
			if !ok {
				return nil, &APIError{Kind: FailureSchema, RawDoc: doc}
			}
			videoID, ok := details["videoId"].(string)
			if !ok {
				return nil, &APIError{Kind: FailureSchema, RawDoc: doc}
			}
			ids = append(ids, videoID)
		}

		c.logger().Debug("collected playlist page", "playlist_id", playlistID, "page", page, "total", len(ids))

		next, _ := doc["nextPageToken"].(string)
		if next == "" {
			return ids, nil
		}
		pageToken = next
	}
}

func (c *Collector) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
