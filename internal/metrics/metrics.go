// Package metrics exports commit-loop events as Prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/circuit/circuit"
)

// Recorder implements circuit.Recorder on Prometheus collectors.
type Recorder struct {
	attempts   *prometheus.CounterVec
	commits    prometheus.Counter
	exhausted  prometheus.Counter
	pathLength prometheus.Histogram
	expanded   prometheus.Histogram
}

var _ circuit.Recorder = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		attempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "circuit_attempts_total",
				Help: "Search attempts by outcome",
			},
			[]string{"outcome"},
		),
		commits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "circuit_commits_total",
			Help: "Paths committed to the occupancy set",
		}),
		exhausted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "circuit_exhausted_total",
			Help: "Commits that gave up after the attempt ceiling",
		}),
		pathLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "circuit_path_length_moves",
			Help:    "Moves per committed path",
			Buckets: prometheus.ExponentialBuckets(1, 2, 9),
		}),
		expanded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "circuit_search_expanded_nodes",
			Help:    "States expanded per search attempt",
			Buckets: prometheus.ExponentialBuckets(1, 4, 9),
		}),
	}
	for _, c := range []prometheus.Collector{r.attempts, r.commits, r.exhausted, r.pathLength, r.expanded} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Attempt records one search.
func (r *Recorder) Attempt(o circuit.Outcome, expanded int) {
	r.attempts.WithLabelValues(o.String()).Inc()
	r.expanded.Observe(float64(expanded))
}

// Committed records a committed path.
func (r *Recorder) Committed(p circuit.Path) {
	r.commits.Inc()
	r.pathLength.Observe(float64(p.Len()))
}

// Exhausted records a commit that ran out of attempts.
func (r *Recorder) Exhausted() { r.exhausted.Inc() }

// Handler serves g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Serve exposes g on addr under /metrics until ctx is done.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer, log *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(g))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() {
		log.Info("metrics server listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
