package handler

import (
	"context"
	"net/http"
	"time"

	chathandler "github.com/memetrics/memetrics-bfa-go/internal/chat/handler"
	chatservice "github.com/memetrics/memetrics-bfa-go/internal/chat/service"
	"github.com/memetrics/memetrics-bfa-go/internal/domain"
	"github.com/memetrics/memetrics-bfa-go/internal/infra/observability"
	"github.com/memetrics/memetrics-bfa-go/internal/port"
	"github.com/memetrics/memetrics-bfa-go/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("handler")

// Services bundles everything the routes delegate to.
type Services struct {
	Store   port.StateStore
	Login   *service.LoginService
	Feed    *service.FeedService
	Profile *service.ProfileService
	Content *service.ContentService
	Chat    *chatservice.ChatService
}

// HealthCheck probes one dependency for GET /healthz.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Options configures the HTTP surface.
type Options struct {
	CORSOrigins  []string
	FrontendDir  string
	HealthChecks []HealthCheck
}

// NewRouter creates the HTTP router with all routes and middleware.
func NewRouter(svcs Services, opts Options, metrics *observability.Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{chathandler.ReplyIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler(opts.HealthChecks))
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- API ---
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", apiHealthHandler())

		// =============================================
		// 1. Login (sem credenciais: só ecoa o nome)
		// =============================================
		r.Post("/auth/login", loginHandler(svcs.Login, logger))

		// =============================================
		// 2. Conteúdo
		// =============================================
		r.Get("/manifesto", manifestoHandler(svcs.Content, logger))
		r.Get("/opportunities", opportunitiesHandler(svcs.Content, logger))
		r.Get("/banking", bankingHandler(svcs.Content, logger))
		r.Get("/investor", investorHandler(svcs.Content, logger))

		// =============================================
		// 3. Feed
		// =============================================
		r.Get("/feed", listFeedHandler(svcs.Feed, logger))
		r.Post("/feed", createPostHandler(svcs.Feed, logger))

		// =============================================
		// 4. Perfil
		// =============================================
		r.Get("/profile", getProfileHandler(svcs.Profile, logger))
		r.Post("/profile/achievements", addAchievementHandler(svcs.Profile, logger))

		// =============================================
		// 5. Mitra
		// =============================================
		r.Get("/mitra/tips", mitraTipsHandler(svcs.Content, logger))
		r.Post("/mitra/chat", chathandler.ChatHandler(svcs.Chat, svcs.Store, logger))
		r.Get("/mitra/metrics", mitraMetricsHandler(metrics))

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusNotFound, "Endpoint not found")
		})
	})

	// --- Frontend ---
	spa := newSPAHandler(opts.FrontendDir)
	r.Get("/", spa.ServeHTTP)
	r.Get("/*", spa.ServeHTTP)

	return r
}

// ============================================================
// Operational
// ============================================================

func healthzHandler(checks []HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		now := time.Now().Format(time.RFC3339)

		services := []domain.ServiceHealth{
			{Name: "bfa-api", Status: "healthy", LastChecked: now},
		}

		for _, c := range checks {
			start := time.Now()
			err := c.Check(ctx)
			sh := domain.ServiceHealth{
				Name:        c.Name,
				Status:      "healthy",
				LatencyMs:   time.Since(start).Milliseconds(),
				LastChecked: now,
			}
			if err != nil {
				sh.Status = "degraded"
				sh.Detail = err.Error()
			}
			services = append(services, sh)
		}

		overallStatus := "healthy"
		for _, s := range services {
			if s.Status == "unhealthy" {
				overallStatus = "unhealthy"
				break
			}
			if s.Status == "degraded" {
				overallStatus = "degraded"
			}
		}

		writeJSON(w, http.StatusOK, domain.HealthStatus{
			Status:   overallStatus,
			Services: services,
		})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func apiHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func mitraMetricsHandler(metrics *observability.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, metrics.GetMitraSnapshot())
	}
}
