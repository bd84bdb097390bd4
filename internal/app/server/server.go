package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	"paydesk/internal/domain/audit"
	"paydesk/internal/domain/employee"
	"paydesk/internal/domain/leave"
	"paydesk/internal/domain/payroll"
	"paydesk/internal/platform/config"
	"paydesk/internal/platform/metrics"
	"paydesk/internal/transport/http/api"
	audithandler "paydesk/internal/transport/http/handlers/audit"
	employeehandler "paydesk/internal/transport/http/handlers/employee"
	leavehandler "paydesk/internal/transport/http/handlers/leave"
	payrollhandler "paydesk/internal/transport/http/handlers/payroll"
	"paydesk/internal/transport/http/middleware"
)

type Server struct {
	cfg  config.Config
	pool *pgxpool.Pool
	http *http.Server
}

func New(cfg config.Config, pool *pgxpool.Pool) *Server {
	s := &Server{cfg: cfg, pool: pool}
	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
	return s
}

func (s *Server) router() http.Handler {
	collector := metrics.New()

	policy := leave.OverlapFullSpan
	if s.cfg.LeaveOverlapPolicy == string(leave.OverlapClipped) {
		policy = leave.OverlapClipped
	}

	employeeStore := employee.NewStore(s.pool)
	leaveService := leave.NewService(leave.NewStore(s.pool), s.cfg.AnnualLeaveEntitlement, policy)
	payrollService := payroll.NewService(payroll.NewStore(s.pool), leaveService, s.cfg.AnchorCurrency, s.cfg.DefaultWorkingDays)
	auditService := audit.New(s.pool)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(collector))
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecureHeaders(s.cfg.Environment == "production"))
	r.Use(middleware.BodyLimit(s.cfg.MaxBodyBytes))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)
	if s.cfg.MetricsEnabled {
		r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(req.Context()))
		})
	}

	r.Route("/api/v1", func(r chi.Router) {
		employeehandler.NewHandler(employeeStore).RegisterRoutes(r)
		leavehandler.NewHandler(leaveService, auditService).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollService, leaveService, employeeStore, auditService, s.cfg.AnchorCurrency, s.cfg.LocalCurrency).RegisterRoutes(r)
		audithandler.NewHandler(auditService).RegisterRoutes(r)
	})

	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]string{"status": "ok"}, middleware.GetRequestID(r.Context()))
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := s.pool.Ping(ctx); err != nil {
		api.Fail(w, http.StatusServiceUnavailable, "db_unavailable", "database is not reachable", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "ready"}, middleware.GetRequestID(r.Context()))
}

// Run serves until the context is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", s.cfg.Addr, "env", s.cfg.Environment)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	slog.Info("shutting down http server")
	return s.http.Shutdown(shutdownCtx)
}
