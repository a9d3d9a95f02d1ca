// Package wts collects the transcripts of a YouTube channel's uploads.
//
// Given a channel URL, wts resolves it to a channel ID, resolves that to the
// channel's uploads playlist, walks the playlist page by page to gather
// every video ID, and fetches a transcript per video.
//
// # Quick start
//
// Collect every video ID of a channel:
//
//	cfg, err := config.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//	ids, err := wts.GetVideoIDs(context.Background(), "https://www.youtube.com/@somechannel", cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The youtube package exposes the individual stages (channel resolution,
// playlist lookup, paginated collection, transcript fetching) for callers
// that need to compose them differently or swap the channel resolver.
package wts
