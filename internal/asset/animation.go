// Package asset fetches the decorative animation shown in the about section.
// The fetch happens once; any failure leaves the static fallback in place.
package asset

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/andyli/portfolio/internal/logger"
)

// maxDescriptorSize bounds the downloaded descriptor.
const maxDescriptorSize = 8 << 20

// Fetcher downloads a Lottie animation descriptor.
type Fetcher struct {
	url    string
	client *http.Client
}

// NewFetcher creates a fetcher for url. A zero timeout keeps the transport
// default.
func NewFetcher(url string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves and validates the descriptor.
func (f *Fetcher) Fetch(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create HTTP request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "portfolio/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "HTTP request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("HTTP request failed with status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDescriptorSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}
	if len(body) > maxDescriptorSize {
		return nil, errors.Errorf("descriptor larger than %d bytes", maxDescriptorSize)
	}

	if err := Validate(body); err != nil {
		return nil, err
	}

	return json.RawMessage(body), nil
}

// Validate checks that data looks like a Lottie descriptor: a JSON object
// with a "layers" array.
func Validate(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New("descriptor is not valid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return errors.New("descriptor is not a JSON object")
	}
	if !root.Get("layers").IsArray() {
		return errors.New("descriptor has no layers array")
	}
	return nil
}

// Animation holds the fetched descriptor, if any. The zero value is the
// fallback state and is safe for concurrent use.
type Animation struct {
	data atomic.Pointer[json.RawMessage]
}

// Data returns the descriptor once it has loaded.
func (a *Animation) Data() (json.RawMessage, bool) {
	p := a.data.Load()
	if p == nil {
		return nil, false
	}
	return *p, true
}

// Ready reports whether the descriptor has loaded.
func (a *Animation) Ready() bool {
	return a.data.Load() != nil
}

// Load fetches the descriptor and stores it. On failure the error is logged,
// the fallback stays in place and Load returns the error.
func (a *Animation) Load(ctx context.Context, f *Fetcher) error {
	log := logger.GetAssetLogger()

	data, err := f.Fetch(ctx)
	if err != nil {
		log.Warn().Err(err).Str("url", f.url).Msg("Animation fetch failed, using static fallback")
		return err
	}

	a.data.Store(&data)
	log.Info().Str("url", f.url).Int("bytes", len(data)).Msg("Animation loaded")
	return nil
}

// LoadAsync starts Load in the background and returns immediately.
// The returned channel is closed when the attempt finishes.
func (a *Animation) LoadAsync(ctx context.Context, f *Fetcher) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				log := logger.GetAssetLogger()
				log.Error().Interface("panic", r).Msg("Animation fetch panicked")
			}
		}()
		_ = a.Load(ctx, f)
	}()
	return done
}
