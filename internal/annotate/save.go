package annotate

import (
	"strings"
	"time"

	"github.com/aretw0/labelwiz/pkg/domain"
)

// SaveResult is the outcome of one save. Err is a *domain.SaveError on I/O
// failure.
type SaveResult struct {
	Report domain.SaveReport
	Err    error

	edits uint64
}

// Save persists the control, snapshots the dataset and writes the snapshot
// on a worker goroutine. The returned channel yields exactly one result.
func (s *Session) Save(filename string) (<-chan SaveResult, error) {
	name := strings.TrimSpace(filename)
	if name == "" {
		return nil, domain.Invalid("filename", "filename_required")
	}
	if !s.saving.CompareAndSwap(false, true) {
		return nil, domain.ErrSaveInProgress
	}
	if err := s.commit(); err != nil {
		s.saving.Store(false)
		return nil, err
	}

	snapshot := s.ds.Clone()
	source := s.cfg.SourcePath
	edits := s.edits.Load()
	s.logger.Debug("save dispatched", "filename", name, "rows", snapshot.NumRows())

	results := make(chan SaveResult, 1)
	go func() {
		defer close(results)
		start := time.Now()
		report, err := s.write(snapshot, source, name, s.now())
		s.metrics.SaveFinished(time.Since(start), err)
		s.saving.Store(false)
		results <- SaveResult{Report: report, Err: err, edits: edits}
	}()
	return results, nil
}

// ApplySaveResult folds a finished save back into the session. Success
// clears Unsaved unless labels changed after the snapshot; failure changes
// nothing.
func (s *Session) ApplySaveResult(res SaveResult) {
	if res.Err != nil {
		s.logger.Error("save failed", "err", res.Err)
		return
	}
	if s.edits.Load() == res.edits {
		s.unsaved.Store(false)
	}
	s.logger.Debug("save applied", "path", res.Report.Path, "size", res.Report.Size)
}
