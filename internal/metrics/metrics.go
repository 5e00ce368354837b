// Package metrics exposes Prometheus counters for the wizard and the
// annotation session. Every Recorder method is safe on a nil receiver, so
// callers never branch on whether metrics are enabled.
package metrics

import (
	"context"
	"time"

	"github.com/aretw0/labelwiz/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder owns a private registry so tests and multiple sessions never
// collide on the global default registry.
type Recorder struct {
	registry     *prometheus.Registry
	stepVisits   *prometheus.CounterVec
	labelsSet    prometheus.Counter
	navigations  *prometheus.CounterVec
	saves        *prometheus.CounterVec
	saveDuration prometheus.Histogram
}

// New creates a Recorder with all collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		stepVisits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "labelwiz_wizard_step_visits_total",
				Help: "Total number of wizard step visits",
			},
			[]string{"step"},
		),
		labelsSet: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "labelwiz_labels_set_total",
			Help: "Total number of non-empty labels written",
		}),
		navigations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "labelwiz_record_navigations_total",
				Help: "Total number of record navigations",
			},
			[]string{"direction"},
		),
		saves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "labelwiz_saves_total",
				Help: "Total number of save attempts by result",
			},
			[]string{"result"},
		),
		saveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "labelwiz_save_duration_seconds",
			Help:    "Duration of dataset saves",
			Buckets: prometheus.DefBuckets,
		}),
	}
	r.registry.MustRegister(r.stepVisits, r.labelsSet, r.navigations, r.saves, r.saveDuration)
	return r
}

// Registry returns the registry backing the Recorder.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// StepVisited counts an entry into a wizard step.
func (r *Recorder) StepVisited(step string) {
	if r == nil {
		return
	}
	r.stepVisits.WithLabelValues(step).Inc()
}

// LabelSet counts a non-empty label write.
func (r *Recorder) LabelSet() {
	if r == nil {
		return
	}
	r.labelsSet.Inc()
}

// Navigated counts a record move ("next", "prev" or "jump").
func (r *Recorder) Navigated(direction string) {
	if r == nil {
		return
	}
	r.navigations.WithLabelValues(direction).Inc()
}

// SaveFinished records the outcome and duration of a save.
func (r *Recorder) SaveFinished(d time.Duration, err error) {
	if r == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	r.saves.WithLabelValues(result).Inc()
	r.saveDuration.Observe(d.Seconds())
}

// Hooks returns wizard lifecycle hooks that count step visits.
func (r *Recorder) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepEnter: func(_ context.Context, ev *domain.StepEvent) {
			r.StepVisited(ev.Step)
		},
	}
}
