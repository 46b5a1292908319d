// Package api is the HTTP edge: it routes requests, decodes bodies and path
// variables, and maps record results to status codes.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"

	"invoiceflow/pkg/logger"
	"invoiceflow/pkg/otel"
	"invoiceflow/pkg/record"
)

// Handler serves every endpoint.
type Handler struct {
	svc     *record.Service
	log     *logger.Logger
	tracer  trace.Tracer
	timeout time.Duration
}

// Option configures a Handler.
type Option func(*Handler)

// WithTracer sets the tracer used for per-request spans.
func WithTracer(t trace.Tracer) Option {
	return func(h *Handler) { h.tracer = t }
}

// WithRequestTimeout bounds each request context. Zero leaves it unbounded.
func WithRequestTimeout(d time.Duration) Option {
	return func(h *Handler) { h.timeout = d }
}

// New creates a Handler.
func New(svc *record.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, log: log}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Router builds the route table.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.traceMiddleware, h.timeoutMiddleware)

	r.HandleFunc("/", helloHandler).Methods(http.MethodGet)
	r.HandleFunc("/hey", heyHandler).Methods(http.MethodGet)
	r.HandleFunc("/echo", echoHandler).Methods(http.MethodPost)

	r.HandleFunc("/add", h.addItemHandler).Methods(http.MethodPost)

	inv := r.PathPrefix("/invoice").Subrouter()
	inv.HandleFunc("/add", h.addInvoiceHandler).Methods(http.MethodPost)
	inv.HandleFunc("/update/{invoice_id}", h.updateInvoiceHandler).Methods(http.MethodPut)
	inv.HandleFunc("/delete/{invoice_id}", h.deleteInvoiceHandler).Methods(http.MethodDelete)
	inv.HandleFunc("/{invoice_id}", h.getInvoiceHandler).Methods(http.MethodGet)

	cl := r.PathPrefix("/client").Subrouter()
	cl.HandleFunc("/add", h.addClientHandler).Methods(http.MethodPost)
	cl.HandleFunc("/update/{client_id}", h.updateClientHandler).Methods(http.MethodPut)
	cl.HandleFunc("/delete/{client_id}", h.deleteClientHandler).Methods(http.MethodDelete)
	cl.HandleFunc("/{client_id}", h.getClientHandler).Methods(http.MethodGet)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	return r
}

func (h *Handler) traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if h.tracer != nil {
			ctx = otel.InjectTracing(ctx, h.tracer)
		}
		name := r.Method + " " + r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				name = r.Method + " " + tpl
			}
		}
		ctx, span := otel.AddSpan(ctx, name)
		defer span.End()

		h.log.Debug(ctx, "request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) timeoutMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.timeout <= 0 {
			next.ServeHTTP(w, r)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
