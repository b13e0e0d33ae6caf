package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"bincatalog/pkg/controller"
)

func TestWithCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/v1/bins", nil)
	req.Header.Set("Origin", "https://backoffice.example")
	rec := httptest.NewRecorder()

	controller.WithCORS()(next).ServeHTTP(rec, req)

	require.False(t, called, "preflight must not reach the router")
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	// browsers reject credentials with a wildcard origin
	require.Empty(t, res.Header.Get("Access-Control-Allow-Credentials"))
	require.Contains(t, res.Header.Get("Access-Control-Allow-Methods"), http.MethodDelete)
	require.Contains(t, res.Header.Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestWithCORS_AllowList(t *testing.T) {
	allowed := "https://backoffice.example"
	mw := controller.WithCORS(allowed, "https://ops.example")

	tests := []struct {
		name        string
		origin      string
		allowOrigin string
		credentials string
	}{
		{name: "listed origin", origin: allowed, allowOrigin: allowed, credentials: "true"},
		{name: "unlisted origin", origin: "https://elsewhere.example"},
		{name: "no origin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			})
			req := httptest.NewRequest(http.MethodGet, "/v1/bins/123456", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			mw(next).ServeHTTP(rec, req)

			res := rec.Result()
			require.Equal(t, http.StatusTeapot, res.StatusCode)
			require.Equal(t, tt.allowOrigin, res.Header.Get("Access-Control-Allow-Origin"))
			require.Equal(t, tt.credentials, res.Header.Get("Access-Control-Allow-Credentials"))
			require.Equal(t, "Origin", res.Header.Get("Vary"))
			require.Equal(t, "X-Request-Id", res.Header.Get("Access-Control-Expose-Headers"))
		})
	}
}
