package wts

import (
	"context"

	"wts/config"
	"wts/youtube"
)

// GetVideoIDs resolves the channel URL and returns every video ID the
// channel has uploaded, in playlist order. It wires the default pipeline:
// yt-dlp channel resolution followed by Data API playlist collection.
func GetVideoIDs(ctx context.Context, channelURL string, cfg *config.Config) ([]string, error) {
	gw := youtube.NewGateway(youtube.GatewayConfig{
		APIKey:  cfg.APIKey,
		Timeout: cfg.APITimeout,
	})

	pipeline := &youtube.Pipeline{
		Resolver: &youtube.YtdlpResolver{Path: cfg.YtdlpPath, Timeout: cfg.ChannelIDTimeout},
		Gateway:  gw,
		MaxPages: cfg.MaxPages,
	}

	return pipeline.GetVideoIDs(ctx, channelURL)
}
