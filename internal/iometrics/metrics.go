// Package iometrics collects per-dataset import metrics and writes them
// in the Prometheus text format, ready for the node-exporter textfile
// collector.
package iometrics

import (
	"fmt"
	"time"

	"github.com/gnames/gn"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/errcode"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/report"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pokedb"

// Recorder keeps metrics of one seeding run in a private registry.
type Recorder struct {
	registry    *prometheus.Registry
	records     *prometheus.CounterVec
	duration    *prometheus.GaugeVec
	unavailable *prometheus.GaugeVec
	rolledBack  *prometheus.GaugeVec
	lastRun     prometheus.Gauge
}

// New creates a Recorder with all collectors registered.
func New() *Recorder {
	res := &Recorder{
		registry: prometheus.NewRegistry(),
		records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Imported records by dataset and result.",
		}, []string{"dataset", "result"}),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_duration_seconds",
			Help:      "Time spent importing a dataset.",
		}, []string{"dataset"}),
		unavailable: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_unavailable",
			Help:      "1 if the dataset source could not be read.",
		}, []string{"dataset"}),
		rolledBack: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_rolled_back",
			Help:      "1 if an atomic dataset import was rolled back.",
		}, []string{"dataset"}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time of the last finished seeding run.",
		}),
	}
	res.registry.MustRegister(
		res.records, res.duration, res.unavailable,
		res.rolledBack, res.lastRun,
	)
	return res
}

// Observe records the outcome of one dataset.
func (r *Recorder) Observe(e report.Entry, took time.Duration) {
	r.records.WithLabelValues(e.Dataset, "success").Add(float64(e.Success))
	r.records.WithLabelValues(e.Dataset, "error").Add(float64(e.Errors))
	r.duration.WithLabelValues(e.Dataset).Set(took.Seconds())
	r.unavailable.WithLabelValues(e.Dataset).Set(boolGauge(e.Unavailable))
	r.rolledBack.WithLabelValues(e.Dataset).Set(boolGauge(e.RolledBack))
}

// Finish marks the end of the run.
func (r *Recorder) Finish(at time.Time) {
	r.lastRun.Set(float64(at.Unix()))
}

// Registry gives access to the collected metrics.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all metrics to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return WriteError(path, err)
	}
	return nil
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// WriteError is returned when the metrics file cannot be written.
func WriteError(path string, err error) error {
	return &gn.Error{
		Code: errcode.MetricsWriteError,
		Msg:  "Cannot write metrics to <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("failed to write metrics %s: %w", path, err),
	}
}
