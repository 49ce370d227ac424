package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fctx"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"go.uber.org/zap"
)

const _maxAssetSize = 32 * 1024 * 1024 // 32 MB

// AssetFetcher reads image assets from local paths, file:// URLs or http(s) URLs
type AssetFetcher struct {
	logger *zap.Logger
	client *http.Client
	limit  int64
}

// NewAssetFetcher creates a new asset fetcher instance
func NewAssetFetcher(logger *zap.Logger) *AssetFetcher {
	return &AssetFetcher{
		logger: logger,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		limit: _maxAssetSize,
	}
}

// Fetch returns the bytes at location. Assets over the size limit are rejected.
func (f *AssetFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	u, err := url.Parse(location)
	if err == nil {
		switch u.Scheme {
		case "http", "https":
			return f.fetchRemote(ctx, location)
		case "file":
			return f.fetchLocal(ctx, u.Path)
		}
	}
	return f.fetchLocal(ctx, location)
}

func (f *AssetFetcher) fetchLocal(ctx context.Context, path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		tag := ftag.Internal
		if errors.Is(err, os.ErrNotExist) {
			tag = ftag.NotFound
		}
		return nil, fault.Wrap(err,
			fctx.With(ctx, "error_at", "fetch-local-open", "path", path),
			ftag.With(tag),
			fmsg.With("cannot open image file"),
		)
	}
	defer file.Close()

	data, err := f.readLimited(file)
	if err != nil {
		return nil, fault.Wrap(err,
			fctx.With(ctx, "error_at", "fetch-local-read", "path", path),
			fmsg.With("cannot read image file"),
		)
	}

	f.logger.Debug("Image read from disk", zap.Int("bytes", len(data)), zap.String("path", path))
	return data, nil
}

func (f *AssetFetcher) fetchRemote(ctx context.Context, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fault.Wrap(err, ftag.With(ftag.InvalidArgument), fmsg.With("failed to create request"))
	}

	req.Header.Set("User-Agent", "duoplayer/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fault.Wrap(err,
			fctx.With(ctx, "error_at", "fetch-remote-do", "url", location),
			ftag.With(ftag.Internal),
			fmsg.With("network error"),
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		tag := ftag.Internal
		if resp.StatusCode == http.StatusNotFound {
			tag = ftag.NotFound
		}
		return nil, fault.Wrap(fmt.Errorf("unexpected status code: %d", resp.StatusCode),
			fctx.With(ctx, "error_at", "fetch-remote-status", "url", location),
			ftag.With(tag),
		)
	}

	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
		return nil, fault.Wrap(fmt.Errorf("url is not an image: %s", ct),
			ftag.With(ftag.InvalidArgument),
		)
	}

	data, err := f.readLimited(resp.Body)
	if err != nil {
		return nil, fault.Wrap(err,
			fctx.With(ctx, "error_at", "fetch-remote-read", "url", location),
			fmsg.With("failed to read body"),
		)
	}

	f.logger.Debug("Image fetched successfully", zap.Int("bytes", len(data)), zap.String("url", location))
	return data, nil
}

// readLimited reads one byte past the limit so an oversized asset fails instead of being cut
func (f *AssetFetcher) readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, f.limit+1))
	if err != nil {
		return nil, fault.Wrap(err, ftag.With(ftag.Internal))
	}
	if int64(len(data)) > f.limit {
		return nil, fault.Wrap(fmt.Errorf("asset exceeds %d bytes", f.limit),
			ftag.With(ftag.InvalidArgument),
			fmsg.With("image too large"),
		)
	}
	return data, nil
}
