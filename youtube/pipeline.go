package youtube

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Pipeline turns a channel URL into the channel's complete ordered list of
// uploaded video IDs: resolve the channel ID, resolve its uploads playlist,
// then walk the playlist page by page. Stages run strictly in sequence and
// any stage failure aborts the run; there is no partial result.
type Pipeline struct {
	// Resolver maps the channel URL to a channel ID.
	Resolver ChannelIDResolver

	// Gateway issues the Data API requests for the remaining stages.
	Gateway *Gateway

	// MaxPages is passed through to the video ID collector. 0 means no cap.
	MaxPages int

	// Logger receives stage progress records. Defaults to slog.Default().
	Logger *slog.Logger
}

// GetVideoIDs runs the full pipeline for the given channel URL and returns
// every video ID in the channel's uploads playlist, in playlist order.
// Errors from the stages propagate unchanged: resolution failures as
// *ChannelFetchError, API failures as *APIError.
func (p *Pipeline) GetVideoIDs(ctx context.Context, channelURL string) ([]string, error) {
	logger := p.logger().With("run_id", uuid.NewString(), "channel", channelURL)

	channelID, err := p.Resolver.ResolveChannelID(ctx, channelURL)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved channel id", "channel_id", channelID)

	playlistID, err := ResolveUploadsPlaylist(ctx, p.Gateway, channelID)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved uploads playlist", "playlist_id", playlistID)

	collector := &Collector{Gateway: p.Gateway, MaxPages: p.MaxPages, Logger: logger}
	ids, err := collector.CollectVideoIDs(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	logger.Info("collected video ids", "count", len(ids))
	return ids, nil
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}
