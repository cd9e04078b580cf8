// SPDX-License-Identifier: MIT

package constants

type requestIDHeaderType string

// RequestIDHeader is the header name for the request ID
const RequestIDHeader requestIDHeaderType = "X-REQUEST-ID"

type contextID int

// PrincipalContextID
const PrincipalContextID contextID = iota

// APIKeyHeader is the header clients present a configured API_KEY in
// (spec §6). Absent any configured key, the server accepts all requests.
const APIKeyHeader string = "X-Api-Key"

type contextAPIKey string

// APIKeyContextID is the context key the authenticated API key, if any,
// is stored under for the duration of a request.
const APIKeyContextID contextAPIKey = "api-key"
