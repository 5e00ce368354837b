package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/labelwiz/internal/annotate"
	"github.com/aretw0/labelwiz/internal/locale"
	"github.com/aretw0/labelwiz/internal/metrics"
	"github.com/aretw0/labelwiz/internal/presentation/tui"
	"github.com/aretw0/labelwiz/internal/wizard"
	"github.com/aretw0/labelwiz/pkg/domain"
)

// errClosed ends Run without an error: the user chose to leave.
var errClosed = errors.New("closed by user")

// Runner handles the wizard and annotation loops using a Prompter.
type Runner struct {
	prompter         Prompter
	engine           *wizard.Engine
	catalog          *locale.Catalog
	logger           *slog.Logger
	metrics          *metrics.Recorder
	renderer         tui.Renderer
	reminderInterval time.Duration
	sessionOpts      []annotate.Option
}

// New creates a Runner that talks to the user through p.
func New(p Prompter, opts ...Option) *Runner {
	r := &Runner{
		prompter:         p,
		catalog:          locale.MustNew(locale.DefaultLanguage),
		logger:           slog.New(slog.DiscardHandler),
		renderer:         tui.Plain,
		reminderInterval: annotate.DefaultReminderInterval,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.engine == nil {
		r.engine = wizard.NewEngine(wizard.WithLogger(r.logger))
	}
	return r
}

// Run executes the wizard and then the annotation loop until the user
// finishes or closes the session. Closing is not an error.
func (r *Runner) Run(ctx context.Context) error {
	signals := NewSignalManager(ctx)
	defer signals.Stop()

	cfg, ds, err := r.runWizard(signals)
	if err == nil {
		err = r.runAnnotation(signals, cfg, ds)
	}
	if errors.Is(err, errClosed) {
		r.logger.Debug("session closed by user")
		return nil
	}
	return err
}

// closeRequested classifies a prompt error. Interrupts and end of input are
// requests to close; anything else is returned.
func (r *Runner) closeRequested(signals *SignalManager, err error) (bool, error) {
	if errors.Is(err, io.EOF) {
		signals.CheckRace()
	}
	if signals.Interrupted() {
		r.logger.Debug("interrupt received")
		signals.Reset()
		return true, nil
	}
	if errors.Is(err, ErrAborted) || errors.Is(err, io.EOF) {
		return true, nil
	}
	return false, err
}

func (r *Runner) text(msg domain.Message) string {
	return r.catalog.Format(msg)
}

func (r *Runner) print(ctx context.Context, text string) {
	if err := r.prompter.Print(ctx, text); err != nil {
		r.logger.Debug("print failed", "err", err)
	}
}

func (r *Runner) notify(ctx context.Context, level domain.Level, text string) {
	line := fmt.Sprintf("%s: %s", r.catalog.Get(string(level)), text)
	if err := r.prompter.Notify(ctx, level, line); err != nil {
		r.logger.Debug("notify failed", "err", err)
	}
}

// showActions prints content and notices, skipping input requests.
func (r *Runner) showActions(ctx context.Context, actions []domain.ActionRequest) {
	for _, act := range actions {
		switch act.Type {
		case domain.ActionRenderContent:
			if msg, ok := act.Payload.(domain.Message); ok {
				r.print(ctx, r.text(msg))
			}
		case domain.ActionSystemMessage:
			if n, ok := act.Payload.(domain.Notice); ok {
				r.notify(ctx, n.Level, r.text(n.Message))
			}
		}
	}
}

// reportError shows a recoverable error in the user's language.
func (r *Runner) reportError(ctx context.Context, err error) {
	var (
		verr    *domain.ValidationError
		loadErr *domain.FileLoadError
		saveErr *domain.SaveError
	)
	switch {
	case errors.As(err, &verr):
		r.notify(ctx, domain.LevelError, r.text(verr.Message()))
	case errors.As(err, &loadErr):
		r.notify(ctx, domain.LevelError, r.catalog.Get("invalid_file_msg"))
		r.logger.Debug("load failed", "path", loadErr.Path, "err", loadErr.Err)
	case errors.As(err, &saveErr):
		r.notify(ctx, domain.LevelError, r.catalog.Sprintf("save_failed", saveErr.Err))
	case errors.Is(err, domain.ErrSaveInProgress):
		r.notify(ctx, domain.LevelWarning, r.catalog.Get("save_in_progress"))
	default:
		r.notify(ctx, domain.LevelError, err.Error())
	}
}
