package runner

import (
	"log/slog"
	"time"

	"github.com/aretw0/labelwiz/internal/annotate"
	"github.com/aretw0/labelwiz/internal/locale"
	"github.com/aretw0/labelwiz/internal/metrics"
	"github.com/aretw0/labelwiz/internal/presentation/tui"
	"github.com/aretw0/labelwiz/internal/wizard"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithEngine configures the wizard engine.
func WithEngine(engine *wizard.Engine) Option {
	return func(r *Runner) {
		r.engine = engine
	}
}

// WithCatalog sets the string table used until the user picks a language.
func WithCatalog(cat *locale.Catalog) Option {
	return func(r *Runner) {
		r.catalog = cat
	}
}

// WithRenderer configures the markdown renderer for records.
func WithRenderer(renderer tui.Renderer) Option {
	return func(r *Runner) {
		r.renderer = renderer
	}
}

// WithMetrics attaches a metrics recorder to the annotation session.
func WithMetrics(m *metrics.Recorder) Option {
	return func(r *Runner) {
		r.metrics = m
	}
}

// WithReminderInterval sets how often unsaved labels are pointed out.
func WithReminderInterval(d time.Duration) Option {
	return func(r *Runner) {
		r.reminderInterval = d
	}
}

// WithSessionOptions passes extra options to the annotation session.
func WithSessionOptions(opts ...annotate.Option) Option {
	return func(r *Runner) {
		r.sessionOpts = append(r.sessionOpts, opts...)
	}
}
