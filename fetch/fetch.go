// Package fetch downloads the API document to a local file.
package fetch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cavaliergopher/grab/v3"
	"github.com/cockroachdb/errors"
)

// Options configures a download.
type Options struct {
	// URL is the location of the API document.
	URL string

	// Dest is the local file the document is written to. Existing files are
	// overwritten.
	Dest string

	// UserAgent is sent with the request. Defaults to "luastubs".
	UserAgent string

	// Timeout bounds the whole transfer. Defaults to 60 seconds.
	Timeout time.Duration
}

// Result describes a completed download.
type Result struct {
	Path     string
	Size     int64
	Duration time.Duration
}

// Download fetches opts.URL into opts.Dest.
func Download(ctx context.Context, opts Options) (*Result, error) {
	if opts.URL == "" {
		return nil, errors.WithHint(errors.New("no source URL configured"),
			"pass --url or set source.url in luastubs.toml")
	}
	if opts.Dest == "" {
		return nil, errors.New("no destination file configured")
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "luastubs"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 60 * time.Second
	}

	if dir := filepath.Dir(opts.Dest); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, "creating directory for %s", opts.Dest)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	req, err := grab.NewRequest(opts.Dest, opts.URL)
	if err != nil {
		return nil, errors.Wrapf(err, "building request for %s", opts.URL)
	}
	req = req.WithContext(ctx)
	req.NoResume = true

	client := grab.NewClient()
	client.UserAgent = opts.UserAgent

	slog.InfoContext(ctx, "downloading API document", "url", opts.URL, "file", opts.Dest)
	resp := client.Do(req)
	if err := resp.Err(); err != nil {
		return nil, errors.Wrapf(err, "downloading %s", opts.URL)
	}

	return &Result{
		Path:     resp.Filename,
		Size:     resp.BytesComplete(),
		Duration: resp.Duration(),
	}, nil
}
