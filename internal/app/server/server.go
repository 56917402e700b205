package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"workforce/internal/admingate"
	"workforce/internal/domain/analytics"
	"workforce/internal/domain/employee"
	"workforce/internal/domain/job"
	"workforce/internal/domain/org"
	"workforce/internal/domain/performance"
	"workforce/internal/domain/training"
	"workforce/internal/platform/config"
	"workforce/internal/platform/metrics"
	dashboardhandler "workforce/internal/transport/http/handlers/dashboard"
	employeeshandler "workforce/internal/transport/http/handlers/employees"
	jobshandler "workforce/internal/transport/http/handlers/jobs"
	orghandler "workforce/internal/transport/http/handlers/org"
	performancehandler "workforce/internal/transport/http/handlers/performance"
	traininghandler "workforce/internal/transport/http/handlers/training"
	"workforce/internal/transport/http/middleware"
)

// App wires the domain services onto the router. Everything the handlers
// need is injected here; nothing reads process-wide state at request time.
type App struct {
	Config    config.Config
	Pool      *pgxpool.Pool
	Gate      admingate.Gate
	Collector *metrics.Collector
	Router    http.Handler
}

func New(cfg config.Config, pool *pgxpool.Pool, gate admingate.Gate) *App {
	app := &App{Config: cfg, Pool: pool, Gate: gate}
	if cfg.MetricsEnabled {
		app.Collector = metrics.New()
	}
	app.Router = app.buildRouter()
	return app
}

func (a *App) buildRouter() http.Handler {
	orgService := org.NewService(org.NewStore(a.Pool))
	jobService := job.NewService(job.NewStore(a.Pool))
	employeeService := employee.NewService(employee.NewStore(a.Pool), employee.Config{
		AllowConcurrentAssignments: a.Config.AllowConcurrentAssignments,
	})

	perfOpts := []performance.Option{}
	if a.Config.AppealResolution == "manual" {
		perfOpts = append(perfOpts, performance.WithResolutionPolicy(performance.ResolutionPolicyManual))
	}
	performanceService := performance.NewService(performance.NewStore(a.Pool), perfOpts...)

	trainingService := training.NewService(training.NewStore(a.Pool),
		training.WithRenderer(training.NewPDFRenderer(a.Config.CertificateDir)))

	analyticsService := analytics.NewService(analytics.NewStore(a.Pool))

	admin := middleware.RequireAdmin(a.Gate)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(a.Collector))
	router.Use(middleware.Recover)
	router.Use(middleware.SecurityHeaders)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := a.Pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if a.Collector != nil {
		router.Get("/metrics", a.handleMetrics)
	}

	router.Route("/api/v1", func(r chi.Router) {
		orghandler.NewHandler(orgService, admin).RegisterRoutes(r)
		jobshandler.NewHandler(jobService, admin).RegisterRoutes(r)
		employeeshandler.NewHandler(employeeService, admin).RegisterRoutes(r)
		performancehandler.NewHandler(performanceService, admin).RegisterRoutes(r)
		traininghandler.NewHandler(trainingService, admin).RegisterRoutes(r)
		dashboardhandler.NewHandler(analyticsService).RegisterRoutes(r)
	})

	return router
}
