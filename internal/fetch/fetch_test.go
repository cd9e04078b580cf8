// SPDX-License-Identifier: MIT

package fetch

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/tylermorales/ilga-graph/pkg/errors"
)

type stubClient struct {
	responses []*http.Response
	errs      []error
	calls     int
}

func (s *stubClient) Do(req *http.Request) (*http.Response, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	return s.responses[i], nil
}

func newResp(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{},
	}
}

func fastOpts() Options {
	opts := DefaultOptions()
	opts.BaseBackoff = time.Millisecond
	opts.RequestInterval = 0
	return opts
}

func TestFetchSuccessOnFirstTry(t *testing.T) {
	client := &stubClient{responses: []*http.Response{newResp(200, "hello")}}
	f := NewWithClient(client, fastOpts())

	resp, err := f.Fetch(context.Background(), "https://example.com/page")
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Status)
	assert.Equal(t, "hello", string(resp.Body))
	assert.Equal(t, 1, client.calls)
}

func TestFetchRetriesTransientThenSucceeds(t *testing.T) {
	client := &stubClient{
		responses: []*http.Response{newResp(503, ""), newResp(503, ""), newResp(200, "ok")},
	}
	f := NewWithClient(client, fastOpts())

	resp, err := f.Fetch(context.Background(), "https://example.com/page")
	require.NoError(t, err)
	assert.Equal(t, "ok", string(resp.Body))
	assert.Equal(t, 3, client.calls)
}

func TestFetchPermanentFailureDoesNotRetry(t *testing.T) {
	client := &stubClient{responses: []*http.Response{newResp(404, "")}}
	f := NewWithClient(client, fastOpts())

	_, err := f.Fetch(context.Background(), "https://example.com/missing")
	require.Error(t, err)
	var fetchErr apperrors.Fetch
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, apperrors.FetchPermanent, fetchErr.Kind)
	assert.Equal(t, 1, client.calls)
}

func TestFetchExhaustsRetriesAsTransient(t *testing.T) {
	opts := fastOpts()
	opts.MaxAttempts = 3
	client := &stubClient{
		responses: []*http.Response{newResp(503, ""), newResp(503, ""), newResp(503, "")},
	}
	f := NewWithClient(client, opts)

	_, err := f.Fetch(context.Background(), "https://example.com/page")
	require.Error(t, err)
	var fetchErr apperrors.Fetch
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, apperrors.FetchTransient, fetchErr.Kind)
	assert.Equal(t, 3, fetchErr.Attempts)
	assert.Equal(t, 3, client.calls)
}

func TestFetchMalformedURLIsPermanent(t *testing.T) {
	f := NewWithClient(&stubClient{}, fastOpts())

	_, err := f.Fetch(context.Background(), "://not-a-url")
	require.Error(t, err)
	var fetchErr apperrors.Fetch
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, apperrors.FetchPermanent, fetchErr.Kind)
}

func TestFastModeReducesIntervalButKeepsRetries(t *testing.T) {
	opts := DefaultOptions()
	opts.Fast = true
	opts.RequestInterval = 400 * time.Millisecond
	assert.Less(t, opts.fastInterval(), opts.RequestInterval)
	assert.Greater(t, opts.MaxAttempts, 0)
}
