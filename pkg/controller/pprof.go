package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is the path Pprof must be mounted at. net/http/pprof resolves
// named profiles (heap, goroutine, allocs, ...) relative to it.
const PprofPrefix = "/debug/pprof"

// Pprof serves the runtime profiles. The handler expects the full request
// path, so routers must not strip PprofPrefix.
func Pprof() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc(PprofPrefix+"/", pprof.Index)
	mux.HandleFunc(PprofPrefix+"/cmdline", pprof.Cmdline)
	mux.HandleFunc(PprofPrefix+"/profile", pprof.Profile)
	mux.HandleFunc(PprofPrefix+"/symbol", pprof.Symbol)
	mux.HandleFunc(PprofPrefix+"/trace", pprof.Trace)

	return mux
}
