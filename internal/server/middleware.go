package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/UnknownOlympus/talos/internal/metrics"
	"github.com/gorilla/mux"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// metricsMiddleware records request totals and latency per route template,
// method and status code.
func metricsMiddleware(mtr *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
			route := req.URL.Path
			if current := mux.CurrentRoute(req); current != nil {
				if tmpl, err := current.GetPathTemplate(); err == nil {
					route = tmpl
				}
			}

			rec := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}
			startTime := time.Now()

			next.ServeHTTP(rec, req)

			duration := time.Since(startTime).Seconds()
			mtr.HTTPRequestDuration.WithLabelValues(route, req.Method).Observe(duration)
			mtr.HTTPRequests.WithLabelValues(route, req.Method, strconv.Itoa(rec.status)).Inc()
		})
	}
}
