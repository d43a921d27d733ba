package imagesource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"

	"github.com/andybalholm/pdfwriter/logger"
	"golang.org/x/sync/errgroup"
)

// A Fetcher returns the encoded bytes of the image named id. Fetchers do
// not retry; a missing image is reported with ErrNotFound.
type Fetcher interface {
	Fetch(ctx context.Context, id string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, id string) ([]byte, error)

func (f FetcherFunc) Fetch(ctx context.Context, id string) ([]byte, error) {
	return f(ctx, id)
}

// FileFetcher reads images from a file system; id is a slash-separated path.
type FileFetcher struct {
	FS fs.FS
}

func (f FileFetcher) Fetch(ctx context.Context, id string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := fs.ReadFile(f.FS, id)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return b, err
}

// HTTPFetcher downloads images. The request URL is BaseURL followed by id.
type HTTPFetcher struct {
	Client  *http.Client // http.DefaultClient if nil
	BaseURL string
}

func (f HTTPFetcher) Fetch(ctx context.Context, id string) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BaseURL+id, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, req.URL)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("imagesource: GET %s: %s", req.URL, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// FetchAll fetches ids concurrently, at most limit at a time (no limit if
// limit <= 0). The first failure cancels the rest.
func FetchAll(ctx context.Context, f Fetcher, ids []string, limit int) ([][]byte, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	results := make([][]byte, len(ids))
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			b, err := f.Fetch(ctx, id)
			if err != nil {
				logger.Error("image fetch failed", "id", id, "err", err)
				return &StageError{Stage: StageFetch, ID: id, Err: err}
			}
			results[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
