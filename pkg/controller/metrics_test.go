package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"bincatalog/pkg/controller"
)

func TestWithMetrics_RecordsRequests(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	middleware, err := controller.WithMetrics(provider, func(*http.Request) string { return "/v1/bins/{bin}" })
	require.NoError(t, err)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	for range 2 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/bins/123456", nil))
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	var counted bool
	for _, m := range rm.ScopeMetrics[0].Metrics {
		if m.Name != "http.server.requests" {
			continue
		}
		sum, ok := m.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		require.Len(t, sum.DataPoints, 1)
		require.Equal(t, int64(2), sum.DataPoints[0].Value)

		route, _ := sum.DataPoints[0].Attributes.Value(attribute.Key("http.route"))
		require.Equal(t, "/v1/bins/{bin}", route.AsString())
		status, _ := sum.DataPoints[0].Attributes.Value(attribute.Key("http.status_code"))
		require.Equal(t, int64(http.StatusNotFound), status.AsInt64())
		counted = true
	}
	require.True(t, counted, "request counter was not exported")
}

func TestWithMetrics_FallsBackToPath(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	middleware, err := controller.WithMetrics(provider, nil)
	require.NoError(t, err)
	middleware(http.NotFoundHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	for _, m := range rm.ScopeMetrics[0].Metrics {
		if hist, ok := m.Data.(metricdata.Histogram[float64]); ok {
			route, _ := hist.DataPoints[0].Attributes.Value(attribute.Key("http.route"))
			require.Equal(t, "/healthz", route.AsString())
		}
	}
}
