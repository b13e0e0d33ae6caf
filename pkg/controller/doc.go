// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Answers browsers of the configured origins and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithMetrics: Counts served requests and records their duration on an OpenTelemetry meter.
//
// Provided helpers:
//   - Pprof: Serves the net/http/pprof handlers under PprofPrefix.
package controller
