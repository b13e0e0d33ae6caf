package controller

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "bincatalog/pkg/controller"

// RouteFunc returns the low-cardinality route label of a served request.
type RouteFunc func(r *http.Request) string

// WithMetrics records the number and the duration of served requests on the
// given meter provider. route is called after the handler ran, so routers that
// resolve patterns lazily can report the matched one.
func WithMetrics(provider metric.MeterProvider, route RouteFunc) (func(http.Handler) http.Handler, error) {
	meter := provider.Meter(meterName)

	requests, err := meter.Int64Counter("http.server.requests",
		metric.WithDescription("Number of served HTTP requests."))
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("http.server.duration",
		metric.WithDescription("Duration of served HTTP requests."),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			label := r.URL.Path
			if route != nil {
				if matched := route(r); matched != "" {
					label = matched
				}
			}
			attrs := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.route", label),
				attribute.Int("http.status_code", rec.status),
			)
			requests.Add(r.Context(), 1, attrs)
			duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
		})
	}, nil
}
