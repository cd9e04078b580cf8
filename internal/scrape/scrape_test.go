// SPDX-License-Identifier: MIT

package scrape

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tylermorales/ilga-graph/internal/fetch"
)

type stubClient struct {
	byURL map[string]string
	fail  map[string]bool
	calls map[string]int
}

func newStubClient() *stubClient {
	return &stubClient{byURL: map[string]string{}, fail: map[string]bool{}, calls: map[string]int{}}
}

func (s *stubClient) Do(req *http.Request) (*http.Response, error) {
	u := req.URL.String()
	s.calls[u]++
	if s.fail[u] {
		return &http.Response{StatusCode: 404, Body: io.NopCloser(strings.NewReader("")), Header: http.Header{}}, nil
	}
	body, ok := s.byURL[u]
	if !ok {
		return &http.Response{StatusCode: 404, Body: io.NopCloser(strings.NewReader("")), Header: http.Header{}}, nil
	}
	return &http.Response{StatusCode: 200, Body: io.NopCloser(strings.NewReader(body)), Header: http.Header{}}, nil
}

func fastFetcher(client *stubClient) *fetch.Fetcher {
	opts := fetch.DefaultOptions()
	opts.RequestInterval = 0
	opts.BaseBackoff = 0
	return fetch.NewWithClient(client, opts)
}

func TestResolveURLJoinsRelativeReference(t *testing.T) {
	got := resolveURL("https://www.ilga.gov", "/senate/default.asp")
	assert.Equal(t, "https://www.ilga.gov/senate/default.asp", got)
}

func TestIDFromURLExtractsQueryParam(t *testing.T) {
	got := idFromURL("https://www.ilga.gov/member?MemberID=42", "MemberID")
	assert.Equal(t, "42", got)
}

func TestIDFromURLMissingParamReturnsEmpty(t *testing.T) {
	got := idFromURL("https://www.ilga.gov/member", "MemberID")
	assert.Empty(t, got)
}

func TestMembersSkipsRowsWithFailedDetailFetch(t *testing.T) {
	client := newStubClient()
	indexURL := "https://www.ilga.gov/house/default.asp"
	client.byURL[indexURL] = `<table>
		<tr><td><a href="/house/Rep.asp?MemberID=1">Jane Smith</a></td></tr>
		<tr><td><a href="/house/Rep.asp?MemberID=2">John Doe</a></td></tr>
	</table>`
	client.byURL["https://www.ilga.gov/house/Rep.asp?MemberID=1"] = `<html><body><h1>Jane Smith (D)</h1></body></html>`
	client.fail["https://www.ilga.gov/house/Rep.asp?MemberID=2"] = true

	senateURL := "https://www.ilga.gov/senate/default.asp"
	client.byURL[senateURL] = `<table></table>`

	deps := NewDeps(fastFetcher(client), nil, "https://www.ilga.gov")
	members, err := Members(context.Background(), deps, 0)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "1", members[0].MemberID)
}
