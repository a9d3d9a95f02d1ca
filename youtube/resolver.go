package youtube

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"
)

const (
	defaultYtdlpPath        = "yt-dlp"
	defaultChannelIDTimeout = 15 * time.Second
)

// ChannelIDResolver maps a channel URL or handle to a stable channel ID.
// Implementations may shell out to external tools (YtdlpResolver) or call
// the Data API directly (APIResolver); the pipeline does not care which.
type ChannelIDResolver interface {
	// ResolveChannelID resolves the given channel URL to a channel ID.
	ResolveChannelID(ctx context.Context, channelURL string) (string, error)
}

// YtdlpResolver resolves channel IDs by invoking yt-dlp as a subprocess.
// yt-dlp is asked to print only the channel_id of the first playlist item,
// with downloads skipped and warnings suppressed. One process is spawned
// per call; there are no retries.
type YtdlpResolver struct {
	// Path is the path to the yt-dlp executable. Defaults to "yt-dlp".
	Path string

	// Timeout is the maximum time to wait for yt-dlp. Defaults to 15 seconds.
	Timeout time.Duration
}

// ResolveChannelID runs yt-dlp against the channel URL and returns the
// trimmed stdout verbatim. The returned string is not validated; a tool
// printing garbage surfaces later as a Data API schema failure.
func (r *YtdlpResolver) ResolveChannelID(ctx context.Context, channelURL string) (string, error) {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = defaultChannelIDTimeout
	}
	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := []string{
		"--print", "filename",
		"-o", "%(channel_id)s",
		"--skip-download",
		"--playlist-items", "1",
		"--no-warnings",
		channelURL,
	}
	cmd := exec.CommandContext(cmdCtx, r.path(), args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if cmdCtx.Err() == context.DeadlineExceeded {
			return "", &ChannelFetchError{URL: channelURL, Timeout: true, Err: err}
		}

		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = "unknown error"
		}
		return "", &ChannelFetchError{URL: channelURL, Detail: detail, Err: err}
	}

	return strings.TrimSpace(stdout.String()), nil
}

func (r *YtdlpResolver) path() string {
	if r.Path != "" {
		return r.Path
	}
	return defaultYtdlpPath
}
