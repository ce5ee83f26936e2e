package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"viralizza/internal/core/port"
	"viralizza/internal/metrics"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: operators manage campaigns and moderate submissions through it,
// and creators propose posts and read the leaderboard.
type Handler struct {
	svc       port.PayoutUseCase
	metrics   *metrics.Metrics
	validator *validator.Validate
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. m may be nil,
// in which case no metrics are recorded and /metrics is not mounted.
func NewHandler(svc port.PayoutUseCase, m *metrics.Metrics, logger *slog.Logger) *Handler {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	h := &Handler{
		svc:       svc,
		metrics:   m,
		validator: v,
		logger:    logger,
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if m != nil {
		r.Use(h.instrument)
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Post("/end", h.handleEndCampaign)
				r.Post("/submissions", h.handleProposeSubmission)
				r.Delete("/users/{user_id}", h.handleResetUser)
				r.Get("/leaderboard", h.handleLeaderboard)
			})
		})
		r.Route("/submissions/{id}", func(r chi.Router) {
			r.Post("/approve", h.handleApprove)
			r.Post("/reject", h.handleReject)
			r.Post("/remove", h.handleRemove)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// instrument records request count and latency by route pattern so that
// path parameters do not explode label cardinality.
func (h *Handler) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h.metrics.HTTPInFlight.Inc()
		defer h.metrics.HTTPInFlight.Dec()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		h.metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		h.metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the header is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
