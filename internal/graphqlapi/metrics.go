// SPDX-License-Identifier: MIT

package graphqlapi

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	gqlerrors "github.com/graph-gophers/graphql-go/errors"
	"github.com/graph-gophers/graphql-go/introspection"
	"github.com/graph-gophers/graphql-go/trace"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var fieldHistogram = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "ilga_graphql_field_seconds",
	Help:    "GraphQL field resolver latencies in seconds.",
	Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
}, []string{"type", "field", "error"})

var queryHistogram = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "ilga_graphql_query_seconds",
	Help:    "Whole-query GraphQL request latencies in seconds.",
	Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
})

// fieldTracer records per-field and per-query latency histograms,
// mirroring the sourcegraph frontend's prometheusTracer but trimmed
// down to this service's needs: no distributed tracing bridge, no
// request-name/user-name labels, since this API has no concept of
// authenticated multi-tenant callers.
type fieldTracer struct{}

func newFieldTracer() *fieldTracer { return &fieldTracer{} }

func (t *fieldTracer) TraceQuery(ctx context.Context, queryString, operationName string, variables map[string]interface{}, varTypes map[string]*introspection.Type) (context.Context, trace.TraceQueryFinishFunc) {
	start := time.Now()
	slog.DebugContext(ctx, "graphql query", "operation", operationName)
	return ctx, func(errs []*gqlerrors.QueryError) {
		d := time.Since(start)
		queryHistogram.Observe(d.Seconds())
		if len(errs) > 0 && d > 500*time.Millisecond {
			slog.WarnContext(ctx, "slow graphql request", "operation", operationName, "duration", d, "errors", len(errs))
		}
	}
}

func (t *fieldTracer) TraceField(ctx context.Context, label, typeName, fieldName string, trivial bool, args map[string]interface{}) (context.Context, trace.TraceFieldFinishFunc) {
	if trivial {
		return ctx, func(*gqlerrors.QueryError) {}
	}
	start := time.Now()
	return ctx, func(err *gqlerrors.QueryError) {
		fieldHistogram.WithLabelValues(typeName, fieldName, strconv.FormatBool(err != nil)).
			Observe(time.Since(start).Seconds())
	}
}
