// SPDX-License-Identifier: MIT

// Package fetch implements the HTTP Fetcher (spec §4.1): a single GET
// with bounded retries, exponential backoff, per-host rate limiting,
// and a shared connection pool across a scrape. One Fetcher type wraps
// an HTTPClient interface and applies the per-host minimum interval,
// the retry loop and the client timeout itself; they are not separate
// decorators.
package fetch

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	apperrors "github.com/tylermorales/ilga-graph/pkg/errors"
)

// HTTPClient matches the Do method of *http.Client, allowing the
// underlying transport to be swapped for a mock in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Response is the successful result of Fetch.
type Response struct {
	Body    []byte
	Status  int
	Headers http.Header
}

// Options configures a Fetcher.
type Options struct {
	UserAgent       string
	MaxAttempts     int
	BaseBackoff     time.Duration
	RequestInterval time.Duration
	Timeout         time.Duration
	Fast            bool
}

// DefaultOptions returns the spec's baseline politeness configuration.
func DefaultOptions() Options {
	return Options{
		UserAgent:       "ilga-graph/1.0 (+https://github.com/tylermorales/ilga-graph)",
		MaxAttempts:     4,
		BaseBackoff:     500 * time.Millisecond,
		RequestInterval: 1200 * time.Millisecond,
		Timeout:         20 * time.Second,
	}
}

// fastInterval returns the per-host inter-request interval: RequestInterval,
// or a quarter of it (at least 50ms) when Fast is set. Fast mode never
// disables retries (spec §4.1).
func (o Options) fastInterval() time.Duration {
	if !o.Fast {
		return o.RequestInterval
	}
	d := o.RequestInterval / 4
	if d < 50*time.Millisecond {
		d = 50 * time.Millisecond
	}
	return d
}

// Fetcher performs rate-limited, retrying HTTP GETs sharing a single
// connection pool across a scrape (spec §4.1). It is safe for
// concurrent use; rate limiting is applied per host.
type Fetcher struct {
	client  HTTPClient
	opts    Options
	mu      sync.Mutex
	lastReq map[string]time.Time
}

// New constructs a Fetcher backed by a connection-pooled transport
// shared by every request the Fetcher issues.
func New(opts Options) *Fetcher {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
	return &Fetcher{
		client:  &http.Client{Transport: transport, Timeout: opts.Timeout},
		opts:    opts,
		lastReq: make(map[string]time.Time),
	}
}

// NewWithClient constructs a Fetcher around a caller-supplied
// HTTPClient, for tests that need to stub network responses.
func NewWithClient(client HTTPClient, opts Options) *Fetcher {
	return &Fetcher{client: client, opts: opts, lastReq: make(map[string]time.Time)}
}

// Fetch performs a single logical GET for rawURL, retrying transient
// failures up to MaxAttempts times with exponential backoff. Permanent
// failures (4xx, malformed URL) are surfaced immediately without retry.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Response, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return nil, apperrors.NewFetch(apperrors.FetchPermanent, rawURL, 0, err)
	}

	var lastErr error
	attempts := 0
	for attempts < f.opts.MaxAttempts {
		attempts++
		f.waitForSlot(parsed.Host)

		resp, status, headers, err := f.do(ctx, rawURL)
		if err == nil {
			return &Response{Body: resp, Status: status, Headers: headers}, nil
		}

		var permanent apperrors.Fetch
		if errors.As(err, &permanent) && permanent.Kind == apperrors.FetchPermanent {
			return nil, err
		}
		lastErr = err

		if attempts < f.opts.MaxAttempts {
			backoff := f.opts.BaseBackoff * time.Duration(1<<uint(attempts-1))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, apperrors.NewFetch(apperrors.FetchTransient, rawURL, attempts, ctx.Err())
			}
		}
	}
	return nil, apperrors.NewFetch(apperrors.FetchTransient, rawURL, attempts, lastErr)
}

func (f *Fetcher) do(ctx context.Context, rawURL string) ([]byte, int, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, nil, apperrors.NewFetch(apperrors.FetchPermanent, rawURL, 1, err)
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, 0, nil, apperrors.NewFetch(apperrors.FetchTransient, rawURL, 1, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, resp.Header, apperrors.NewFetch(apperrors.FetchTransient, rawURL, 1, err)
	}

	switch {
	case resp.StatusCode >= 500:
		return nil, resp.StatusCode, resp.Header, apperrors.NewFetch(apperrors.FetchTransient, rawURL, 1, nil)
	case resp.StatusCode >= 400:
		return nil, resp.StatusCode, resp.Header, apperrors.NewFetch(apperrors.FetchPermanent, rawURL, 1, nil)
	}
	return body, resp.StatusCode, resp.Header, nil
}

// waitForSlot blocks until the per-host politeness interval has
// elapsed since the last request to that host.
func (f *Fetcher) waitForSlot(host string) {
	interval := f.opts.fastInterval()
	if interval <= 0 {
		return
	}

	f.mu.Lock()
	last, seen := f.lastReq[host]
	var wait time.Duration
	if seen {
		if elapsed := time.Since(last); elapsed < interval {
			wait = interval - elapsed
		}
	}
	f.mu.Unlock()

	if wait > 0 {
		time.Sleep(wait)
	}

	f.mu.Lock()
	f.lastReq[host] = time.Now()
	f.mu.Unlock()
}
