// Package annotate holds the record-by-record labeling session that follows
// the wizard.
//
// A Session is driven from a single loop. The only work it hands to another
// goroutine is the save, which receives a snapshot of the dataset and reports
// back through a channel the loop consumes.
package annotate

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/aretw0/labelwiz/internal/metrics"
	"github.com/aretw0/labelwiz/pkg/dataset"
	"github.com/aretw0/labelwiz/pkg/domain"
)

// Writer persists a dataset next to sourcePath under filename.
type Writer func(ds *domain.Dataset, sourcePath, filename string, now time.Time) (domain.SaveReport, error)

// Session is an annotation session over one dataset.
type Session struct {
	cfg     domain.WizardConfig
	ds      *domain.Dataset
	index   int
	control string

	unsaved atomic.Bool
	saving  atomic.Bool
	// edits counts label writes so a save only clears Unsaved if nothing
	// changed after its snapshot was taken.
	edits atomic.Uint64

	write   Writer
	now     func() time.Time
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// Option configures a Session.
type Option func(*Session)

// WithWriter replaces the save writer (default: dataset.Save).
func WithWriter(w Writer) Option {
	return func(s *Session) {
		s.write = w
	}
}

// WithClock sets the time source used for save timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(r *metrics.Recorder) Option {
	return func(s *Session) {
		s.metrics = r
	}
}

// NewSession starts a session at the first record.
func NewSession(cfg domain.WizardConfig, ds *domain.Dataset, opts ...Option) (*Session, error) {
	if ds == nil {
		return nil, domain.ErrNoDataset
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ds.NumRows() == 0 {
		return nil, domain.ErrEmptyDataset
	}
	if !ds.HasColumn(cfg.LabelColumn) {
		return nil, fmt.Errorf("label column %q not in dataset", cfg.LabelColumn)
	}
	s := &Session{
		cfg:    cfg.Clone(),
		ds:     ds,
		write:  dataset.Save,
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(0)
	return s, nil
}

// Config returns the configuration the session was built with.
func (s *Session) Config() domain.WizardConfig { return s.cfg.Clone() }

// Dataset returns the dataset being annotated.
func (s *Session) Dataset() *domain.Dataset { return s.ds }

// Len returns the number of records.
func (s *Session) Len() int { return s.ds.NumRows() }

// Unsaved reports whether a label was set since the last successful save.
func (s *Session) Unsaved() bool { return s.unsaved.Load() }

// Saving reports whether a save is in flight.
func (s *Session) Saving() bool { return s.saving.Load() }

// State returns a snapshot of the session position and flags.
func (s *Session) State() domain.AnnotationState {
	return domain.AnnotationState{
		Index:   s.index,
		Unsaved: s.unsaved.Load(),
		Control: s.control,
	}
}

// ShowRecord moves the view to record i (0-based) without persisting the
// control and returns it.
func (s *Session) ShowRecord(i int) (RecordView, error) {
	if i < 0 || i >= s.ds.NumRows() {
		return RecordView{}, domain.Invalid("record", "invalid_record_num", s.ds.NumRows())
	}
	s.load(i)
	return s.Current(), nil
}

// SetLabel validates value, updates the control and writes it to the
// current record.
func (s *Session) SetLabel(value string) error {
	if err := s.validate(value); err != nil {
		return err
	}
	s.control = value
	return s.commit()
}

// ResolveLabel maps raw input to a label value. For categorical labels a
// 1-based option number selects that option.
func (s *Session) ResolveLabel(raw string) (string, error) {
	if s.cfg.LabelType != domain.LabelCategorical {
		return raw, nil
	}
	value := strings.TrimSpace(raw)
	if value == "" || slices.Contains(s.cfg.LabelOptions, value) {
		return value, nil
	}
	if n, err := strconv.Atoi(value); err == nil && n >= 1 && n <= len(s.cfg.LabelOptions) {
		return s.cfg.LabelOptions[n-1], nil
	}
	return "", domain.Invalid("label", "invalid_label", value)
}

// Next persists the control and moves forward. It reports false on the last
// record.
func (s *Session) Next() (bool, error) {
	if s.index >= s.ds.NumRows()-1 {
		return false, nil
	}
	if err := s.commit(); err != nil {
		return false, err
	}
	s.load(s.index + 1)
	s.metrics.Navigated("next")
	return true, nil
}

// Prev persists the control and moves back. It reports false on the first
// record.
func (s *Session) Prev() (bool, error) {
	if s.index == 0 {
		return false, nil
	}
	if err := s.commit(); err != nil {
		return false, err
	}
	s.load(s.index - 1)
	s.metrics.Navigated("prev")
	return true, nil
}

// Jump moves to the 1-based record number in target.
func (s *Session) Jump(target string) error {
	n, err := strconv.Atoi(strings.TrimSpace(target))
	if err != nil || n < 1 || n > s.ds.NumRows() {
		return domain.Invalid("record", "invalid_record_num", s.ds.NumRows())
	}
	if err := s.commit(); err != nil {
		return err
	}
	s.load(n - 1)
	s.metrics.Navigated("jump")
	return nil
}

// RequestClose reports whether the session may end. With unsaved labels it
// defers to confirm; declining changes nothing.
func (s *Session) RequestClose(confirm func() bool) bool {
	if !s.unsaved.Load() {
		return true
	}
	ok := confirm()
	s.logger.Debug("close requested with unsaved labels", "confirmed", ok)
	return ok
}

func (s *Session) validate(value string) error {
	if s.cfg.LabelType == domain.LabelCategorical && value != "" && !slices.Contains(s.cfg.LabelOptions, value) {
		return domain.Invalid("label", "invalid_label", value)
	}
	return nil
}

// commit writes the control into the current record.
func (s *Session) commit() error {
	previous, err := s.ds.Cell(s.index, s.cfg.LabelColumn)
	if err != nil {
		return err
	}
	if previous == s.control {
		return nil
	}
	if err := s.ds.SetCell(s.index, s.cfg.LabelColumn, s.control); err != nil {
		return err
	}
	s.edits.Add(1)
	if s.control != "" {
		s.unsaved.CompareAndSwap(false, true)
		s.metrics.LabelSet()
	}
	s.logger.Debug("label set", "record", s.index+1, "column", s.cfg.LabelColumn)
	return nil
}

func (s *Session) load(i int) {
	s.index = i
	s.control, _ = s.ds.Cell(i, s.cfg.LabelColumn)
}
