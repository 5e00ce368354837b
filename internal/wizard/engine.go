// Package wizard implements the label setup flow as an explicit state machine.
//
// The Engine never talks to a terminal. Render describes the current step as
// a list of domain.ActionRequest values and Navigate applies a typed Input,
// returning the next State. Hosts (see pkg/runner) own all presentation.
package wizard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/labelwiz/internal/locale"
	"github.com/aretw0/labelwiz/pkg/dataset"
	"github.com/aretw0/labelwiz/pkg/domain"
)

// Loader turns a path into a dataset. Errors should be *domain.FileLoadError.
type Loader func(path string) (*domain.Dataset, error)

// MaxOptionCount caps the number of categorical options. Counts above the
// warning threshold are still accepted up to this limit.
const MaxOptionCount = 1000

// Engine is the wizard state machine.
type Engine struct {
	load       Loader
	logger     *slog.Logger
	hooks      domain.LifecycleHooks
	languages  []string
	language   string
	maxColumns int
	maxOptions int
}

// Option configures the Engine.
type Option func(*Engine)

// WithLoader replaces the file loader (default: dataset.Load).
func WithLoader(l Loader) Option {
	return func(e *Engine) {
		e.load = l
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers step enter/leave callbacks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLanguages sets the languages offered by the first step.
func WithLanguages(langs ...string) Option {
	return func(e *Engine) {
		e.languages = append([]string(nil), langs...)
	}
}

// WithLanguage preselects a language; the wizard then starts at FileSelect.
func WithLanguage(lang string) Option {
	return func(e *Engine) {
		e.language = lang
	}
}

// WithMaxColumnsWarning sets the column count above which loading warns.
func WithMaxColumnsWarning(n int) Option {
	return func(e *Engine) {
		e.maxColumns = n
	}
}

// WithMaxOptionsWarning sets the option count above which the wizard warns.
func WithMaxOptionsWarning(n int) Option {
	return func(e *Engine) {
		e.maxOptions = n
	}
}

// NewEngine creates a wizard engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		load:       dataset.Load,
		logger:     slog.New(slog.DiscardHandler),
		languages:  locale.Languages(),
		maxColumns: 10,
		maxOptions: 10,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start returns the initial state.
func (e *Engine) Start(ctx context.Context) *State {
	s := &State{Step: StepLanguage}
	if e.language != "" {
		s.Step = StepFileSelect
		s.Config.Language = e.language
	}
	e.emitEnter(ctx, s.Step, "", false)
	return s
}

// Navigate applies in to s and returns the next state plus any non-blocking
// notices. On error the returned state is nil and s remains valid; errors are
// *domain.ValidationError or *domain.FileLoadError.
func (e *Engine) Navigate(ctx context.Context, s *State, in Input) (*State, []domain.ActionRequest, error) {
	if s == nil {
		return nil, nil, fmt.Errorf("navigate: nil state")
	}
	if s.Done() {
		return nil, nil, fmt.Errorf("navigate: wizard already finished")
	}

	if in.Kind == InputBack {
		return e.back(ctx, s), nil, nil
	}

	next, notices, err := e.submit(s, in)
	if err != nil {
		e.logger.Debug("step rejected input", "step", s.Step, "err", err)
		return nil, nil, err
	}
	e.transition(ctx, s.Step, next.Step, false)
	return next, notices, nil
}

func (e *Engine) back(ctx context.Context, s *State) *State {
	next := s.clone()
	prev, ok := e.predecessor(s)
	if !ok {
		return next
	}
	if s.Step == StepOptionEntries {
		next.Config.LabelOptions = nil
	}
	next.Step = prev
	e.transition(ctx, s.Step, prev, true)
	return next
}

// predecessor returns the back edge of the current step.
func (e *Engine) predecessor(s *State) (Step, bool) {
	switch s.Step {
	case StepFileSelect:
		if e.language != "" {
			return "", false
		}
		return StepLanguage, true
	case StepFileStats:
		return StepFileSelect, true
	case StepHasLabelColumn:
		return StepFileStats, true
	case StepSelectColumn, StepNameColumn:
		return StepHasLabelColumn, true
	case StepLabelType:
		if s.HasLabel {
			return StepSelectColumn, true
		}
		return StepNameColumn, true
	case StepNumOptions:
		return StepLabelType, true
	case StepOptionEntries:
		return StepNumOptions, true
	}
	return "", false
}

func (e *Engine) transition(ctx context.Context, from, to Step, back bool) {
	if from == to {
		return
	}
	e.logger.Debug("wizard transition", "from", from, "to", to, "back", back)
	if e.hooks.OnStepLeave != nil {
		e.hooks.OnStepLeave(ctx, &domain.StepEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStepLeave},
			Step:      string(from),
			Peer:      string(to),
			Back:      back,
		})
	}
	e.emitEnter(ctx, to, from, back)
}

func (e *Engine) emitEnter(ctx context.Context, step, from Step, back bool) {
	if e.hooks.OnStepEnter == nil {
		return
	}
	e.hooks.OnStepEnter(ctx, &domain.StepEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStepEnter},
		Step:      string(step),
		Peer:      string(from),
		Back:      back,
	})
}

func warning(key string, args ...any) domain.ActionRequest {
	return domain.ActionRequest{
		Type:    domain.ActionSystemMessage,
		Payload: domain.Notice{Level: domain.LevelWarning, Message: domain.Msg(key, args...)},
	}
}
