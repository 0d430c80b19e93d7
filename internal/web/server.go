// Package web configures and exposes the HTTP server, routes, templates,
// metrics and related middleware for the invoice dashboard.
package web

import (
	"fmt"
	"net/http"
	"time"

	"invoicer/internal/auth"
	"invoicer/internal/config"
	"invoicer/internal/invoices"
	"invoicer/pkg/controller"
	"invoicer/pkg/viewcache"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string

	// SessionTTL controls the lifetime of the session cookie set on login.
	SessionTTL time.Duration
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,

		SessionTTL: cfg.Auth.SessionTTL,
	}
}

// Deps bundles the services the HTTP handlers depend on.
type Deps struct {
	Auth     auth.Authenticator
	Invoices invoices.Service
}

// Handler owns the HTTP handlers for all dashboard pages and actions.
type Handler struct {
	options  Options
	auth     auth.Authenticator
	invoices invoices.Service
	cache    *viewcache.Cache
	renderer *renderer
}

// NewHandler builds the page handler set, parsing all templates up front.
func NewHandler(deps Deps, opts Options) (*Handler, error) {
	rnd, err := newRenderer()
	if err != nil {
		return nil, fmt.Errorf("could not build renderer: %w", err)
	}

	return &Handler{
		options:  opts,
		auth:     deps.Auth,
		invoices: deps.Invoices,
		cache:    viewcache.New(),
		renderer: rnd,
	}, nil
}

// render executes the named page template and writes it with the given status.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	body, err := h.renderer.page(page, data)
	if err != nil {
		h.serverError(w, r, err)

		return
	}
	writeHTML(w, status, body)
}

// writeHTML writes an already rendered page body.
func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - pprof endpoints for profiling
// - the session-guarded dashboard pages and invoice actions
// It also wraps the router with CORS, metrics and logging middlewares and
// applies a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	h, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(controller.WithLogger)
	router.Use(controller.WithCORS)
	router.Use(controller.WithMetrics)

	// operational endpoints stay outside the session guard
	router.Handle(opts.MetricsPath, promhttp.Handler())
	router.Mount("/debug/pprof", controller.PprofMux())

	router.Group(func(r chi.Router) {
		r.Use(h.WithSession)

		r.Get("/", h.GetHome)
		r.Get("/login", h.GetLogin)
		r.Post("/login", h.PostLogin)
		r.Post("/logout", h.PostLogout)

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", h.GetDashboard)
			r.Route("/invoices", func(r chi.Router) {
				r.Get("/", h.GetInvoices)
				r.Get("/create", h.GetCreateInvoice)
				r.Post("/create", h.PostCreateInvoice)
				r.Get("/{id}/edit", h.GetEditInvoice)
				r.Post("/{id}/edit", h.PostEditInvoice)
				r.Post("/{id}/delete", h.PostDeleteInvoice)
			})
		})
	})

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(router, opts.RequestTimeout, "request timed out"),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
