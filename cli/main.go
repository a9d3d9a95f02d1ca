package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"wts/config"
	"wts/youtube"
)

func main() {
	var (
		channelURL  = flag.String("channel", "https://www.youtube.com/@ryanthreethousand", "YouTube channel URL or handle")
		transcripts = flag.Bool("transcripts", true, "fetch a transcript for every collected video")
		apiResolver = flag.Bool("api-resolver", false, "resolve the channel ID via the Data API instead of yt-dlp")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var resolver youtube.ChannelIDResolver
	if *apiResolver {
		resolver, err = youtube.NewAPIResolver(ctx, cfg.APIKey)
		if err != nil {
			logger.Error("create api resolver", "err", err)
			os.Exit(1)
		}
	} else {
		resolver = &youtube.YtdlpResolver{Path: cfg.YtdlpPath, Timeout: cfg.ChannelIDTimeout}
	}

	gw := youtube.NewGateway(youtube.GatewayConfig{
		APIKey:  cfg.APIKey,
		Timeout: cfg.APITimeout,
		Logger:  logger,
	})
	pipeline := &youtube.Pipeline{
		Resolver: resolver,
		Gateway:  gw,
		MaxPages: cfg.MaxPages,
		Logger:   logger,
	}

	ids, err := pipeline.GetVideoIDs(ctx, *channelURL)
	if err != nil {
		logger.Error("collect video ids", "channel", *channelURL, "err", err)
		os.Exit(1)
	}

	for _, id := range ids {
		fmt.Println(id)
	}

	if !*transcripts {
		return
	}

	fetcher := youtube.NewTimedtextClient(youtube.WithTimedtextLogger(logger))
	fetched := 0
	for _, id := range ids {
		if _, err := fetcher.FetchTranscript(ctx, id, cfg.Language); err != nil {
			if errors.Is(err, youtube.ErrNoTranscript) {
				logger.Warn("no transcript", "video_id", id, "lang", cfg.Language)
				continue
			}
			logger.Error("fetch transcript", "video_id", id, "err", err)
			os.Exit(1)
		}
		fetched++
	}
	logger.Info("done", "videos", len(ids), "transcripts", fetched)
}
