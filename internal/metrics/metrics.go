// Package metrics exposes Prometheus counters for the signal pipeline.
package metrics

import (
	"errors"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RunsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "signal_runs_total", Help: "Completed signal-check runs"},
	)
	RunErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "signal_run_errors_total", Help: "Signal-check runs that hit an error"},
	)
	SignalsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "signals_generated_total", Help: "Signals emitted after filtering"},
		[]string{"symbol", "action"},
	)
	SignalsSaved = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "signals_saved_total", Help: "Signals persisted to history"},
	)
)

func init() {
	prometheus.MustRegister(RunsTotal, RunErrorsTotal, SignalsGenerated, SignalsSaved)
}

// Serve starts the /metrics endpoint on addr in the background.
func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[ERROR] metrics server on %s: %v", addr, err)
		}
	}()
	return srv
}
