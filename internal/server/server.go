package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/talos/internal/config"
	"github.com/UnknownOlympus/talos/internal/lib/logger/sl"
	"github.com/UnknownOlympus/talos/internal/metrics"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the full API route table. Route templates here feed the
// "route" label of the HTTP metrics.
func NewRouter(
	log *slog.Logger,
	mtr *metrics.Metrics,
	employeeSvc EmployeeService,
	skillSvc SkillService,
	health *HealthChecker,
	reg *prometheus.Registry,
) *mux.Router {
	employeeHandler := NewEmployeeHandler(employeeSvc, log)
	skillHandler := NewSkillHandler(skillSvc, log)

	router := mux.NewRouter()
	router.Handle("/healthz", health).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(metricsMiddleware(mtr))

	api.HandleFunc("/employees", employeeHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/employees", employeeHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/employees/login", employeeHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/employees/by-email/{email}", employeeHandler.GetByEmail).Methods(http.MethodGet)
	api.HandleFunc("/employees/{id:[0-9]+}", employeeHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/employees/{id:[0-9]+}", employeeHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/employees/{id:[0-9]+}/skills", skillHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/employees/{id:[0-9]+}/skills", skillHandler.ListForEmployee).Methods(http.MethodGet)
	api.HandleFunc("/skills/{id:[0-9]+}", skillHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/skills/{id:[0-9]+}", skillHandler.Delete).Methods(http.MethodDelete)

	return router
}

// Start runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully.
func Start(ctx context.Context, log *slog.Logger, cfg config.HTTPServerConfig, handler http.Handler) error {
	shutdownTimeout := 10 * time.Second

	srv := &http.Server{
		Addr:        cfg.Address,
		Handler:     handler,
		ReadTimeout: cfg.ReadTimeout,
		IdleTimeout: cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "HTTP server listening", "address", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(ctx, "HTTP server shutdown failed", sl.Err(err))
		return err
	}

	log.InfoContext(ctx, "HTTP server stopped gracefully")

	return nil
}
