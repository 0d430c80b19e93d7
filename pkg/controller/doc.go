// Package controller contains HTTP middlewares and helper handlers used by
// the web server.
//
// Provided middlewares:
//   - WithCORS: permissive CORS headers and OPTIONS preflight handling.
//   - WithLogger: request-scoped logger and request ID plus an access log line.
//   - WithMetrics: per-request duration histogram for prometheus.
//
// Provided helpers:
//   - PprofMux: a ServeMux exposing net/http/pprof handlers.
package controller
