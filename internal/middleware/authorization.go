// SPDX-License-Identifier: MIT

package middleware

import (
	"context"
	"net/http"

	"github.com/tylermorales/ilga-graph/pkg/constants"
)

// APIKeyMiddleware gates every request behind the optionally configured
// API_KEY (spec §6): when key is empty the server is unauthenticated
// and every request passes through unchanged; otherwise a request must
// present the same value in the X-Api-Key header or it is rejected with
// 401 before reaching any handler.
func APIKeyMiddleware(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if key == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get(constants.APIKeyHeader)
			if presented != key {
				http.Error(w, "invalid or missing API key", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), constants.APIKeyContextID, presented)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
