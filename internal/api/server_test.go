package api_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bincatalog/internal/api"
	"bincatalog/internal/api/handler/v1handler"
	mockcatalog "bincatalog/internal/catalog/mock"
	"bincatalog/pkg/domain"
	"bincatalog/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func newHandler(t *testing.T) (*mockcatalog.MockCatalog, http.Handler) {
	t.Helper()

	return newHandlerWith(t, api.Options{})
}

func newHandlerWith(t *testing.T, opts api.Options) (*mockcatalog.MockCatalog, http.Handler) {
	t.Helper()

	opts.SecHandlerOptions = &v1handler.SecHandlerOptions{DefaultActor: "system"}
	opts.MetricsPath = "/metrics"

	cat := mockcatalog.NewMockCatalog(gomock.NewController(t))
	handler, err := api.NewHandler(api.Deps{
		Deps:       v1handler.Deps{Catalog: cat},
		Registerer: prometheus.NewRegistry(),
	}, opts)
	require.NoError(t, err)

	return cat, handler
}

func TestNewHandler_Endpoints(t *testing.T) {
	_, handler := newHandler(t)

	tests := []struct {
		path        string
		contentType string
		contains    string
	}{
		{path: "/healthz", contentType: "application/json", contains: `"ok"`},
		{path: "/specs/v1.yaml", contentType: "application/yaml", contains: "openapi: 3.0.3"},
		{path: "/v1/docs/", contains: "BIN Catalog Service"},
		{path: "/metrics"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			if tt.contentType != "" {
				require.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			}
			require.Contains(t, rec.Body.String(), tt.contains)
			require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
			require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestNewHandler_Pprof(t *testing.T) {
	_, enabled := newHandlerWith(t, api.Options{PprofEnabled: true})
	for _, path := range []string{"/debug/pprof/", "/debug/pprof/cmdline", "/debug/pprof/goroutine?debug=1"} {
		rec := httptest.NewRecorder()
		enabled.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}

	_, disabled := newHandler(t)
	rec := httptest.NewRecorder()
	disabled.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewHandler_CORSAllowList(t *testing.T) {
	_, handler := newHandlerWith(t, api.Options{CORSOrigins: []string{"https://backoffice.example"}})

	req := httptest.NewRequest(http.MethodOptions, "/v1/bins", nil)
	req.Header.Set("Origin", "https://backoffice.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "https://backoffice.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://elsewhere.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewHandler_V1UsesDefaultActor(t *testing.T) {
	cat, handler := newHandler(t)

	cat.EXPECT().ChangeBinStatus(gomock.Any(), "123456", "I", domain.SomeActor("system")).
		Return(nil, domain.FamilyBin.NotFound("bin 123456 not found"))

	req := httptest.NewRequest(http.MethodPatch, "/v1/bins/123456/status", strings.NewReader(`{"status":"I"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "BIN_NOT_FOUND")
}

func TestNewHandler_UnknownRoute(t *testing.T) {
	_, handler := newHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/bins", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
