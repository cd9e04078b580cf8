// SPDX-License-Identifier: MIT

// Package httpapi is the HTTP transport (spec §6): it mounts the
// GraphQL endpoint, a liveness/readiness probe, and the server-rendered
// advocacy UI behind the same request-ID/CORS/API-key middleware chain
// the teacher's handleHTTPServer builds for its goa-generated mux.
package httpapi

import (
	"net/http"

	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/tylermorales/ilga-graph/internal/config"
	"github.com/tylermorales/ilga-graph/internal/domain/model"
	"github.com/tylermorales/ilga-graph/internal/geo"
	"github.com/tylermorales/ilga-graph/internal/graph"
	"github.com/tylermorales/ilga-graph/internal/middleware"
)

// Server holds everything a request handler needs: the graph snapshot
// (replaced as a whole by SetSnapshot, never mutated in place), the
// parsed GraphQL schema, and the advocacy crosswalk.
type Server struct {
	cfg       *config.Config
	schema    *graphql.Schema
	snapshot  *Snapshot
	crosswalk *geo.Crosswalk
}

// Snapshot is the subset of ETL Orchestrator output the HTTP layer
// reads on every request. The serve command sets it once, before the
// server starts listening.
type Snapshot struct {
	Graph      *graph.Graph
	Scorecards map[string]*model.Scorecard
	Moneyball  map[string]*model.MoneyballProfile
}

// New builds a Server. schema must already be parsed via
// graphqlapi.Schema; crosswalk may be nil, in which case the advocacy
// routes stay registered and every search returns the loading-error
// result.
func New(cfg *config.Config, schema *graphql.Schema, crosswalk *geo.Crosswalk) *Server {
	return &Server{cfg: cfg, schema: schema, crosswalk: crosswalk, snapshot: &Snapshot{}}
}

// SetSnapshot replaces the snapshot pointer. The assignment is not
// synchronized with in-flight requests; the serve command calls it once,
// before the server starts listening.
func (s *Server) SetSnapshot(snap *Snapshot) {
	s.snapshot = snap
}

// Handler builds the full mux wrapped in the middleware chain (spec
// §6): request ID first, then CORS, then the optional API key gate.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("POST /graphql", relay.Handler{Schema: s.schema})
	if s.cfg.DevMode {
		mux.HandleFunc("GET /graphql", s.handleGraphQLExplorer)
	}
	mux.HandleFunc("GET /advocacy", s.handleAdvocacyForm)
	mux.HandleFunc("POST /advocacy/search", s.handleAdvocacySearch)

	var handler http.Handler = mux
	handler = middleware.APIKeyMiddleware(s.cfg.APIKey)(handler)
	handler = corsMiddleware(s.cfg.CORSOrigins)(handler)
	handler = middleware.RequestIDMiddleware()(handler)
	return handler
}

// corsMiddleware applies cfg.CORSOrigins (spec §6 CORS_ORIGINS): "*"
// allows any origin, an empty list allows none, otherwise only listed
// origins are echoed back.
func corsMiddleware(origins []string) func(http.Handler) http.Handler {
	allowAll := len(origins) == 1 && origins[0] == "*"
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && (allowAll || allowed[origin]) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Api-Key")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// handleHealth reports {status, ready} (spec §6 GET /health): ready is
// true only once the snapshot's member set has been populated, so a
// load balancer can hold traffic during the boot-time load-only run.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot
	ready := snap != nil && snap.Graph != nil && len(snap.Graph.Members) > 0

	w.Header().Set("Content-Type", "application/json")
	if !ready {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"loading","ready":false}`))
		return
	}
	_, _ = w.Write([]byte(`{"status":"ok","ready":true}`))
}

func (s *Server) handleGraphQLExplorer(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(explorerHTML))
}

const explorerHTML = `<!doctype html>
<html><head><title>ilga-graph explorer</title></head>
<body>
<textarea id="q" rows="10" cols="80">{ billAdvancementAnalyticsSummary { totalBills signed } }</textarea><br>
<button onclick="run()">Run</button>
<pre id="out"></pre>
<script>
async function run() {
  const res = await fetch('/graphql', {method:'POST', headers:{'Content-Type':'application/json'}, body: JSON.stringify({query: document.getElementById('q').value})});
  document.getElementById('out').textContent = JSON.stringify(await res.json(), null, 2);
}
</script>
</body></html>`

