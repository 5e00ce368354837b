package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDataset is returned when a file parses to zero data rows.
	ErrEmptyDataset = errors.New("dataset has no rows")

	// ErrUnsupportedFormat is returned for file extensions other than .csv, .xlsx and .xls.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrNoDataset is returned when an operation needs a loaded dataset.
	ErrNoDataset = errors.New("no dataset loaded")

	// ErrSaveInProgress is returned when a save is requested while another is in flight.
	ErrSaveInProgress = errors.New("save already in progress")

	// ErrWizardIncomplete is returned when the configuration is read before the wizard finished.
	ErrWizardIncomplete = errors.New("wizard has not finished")
)

// FileLoadError reports a file that could not be turned into a dataset.
type FileLoadError struct {
	Path string
	Err  error
}

func (e *FileLoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *FileLoadError) Unwrap() error { return e.Err }

// ValidationError reports user input that blocks the current step.
// Key and Args identify the localised message to show.
type ValidationError struct {
	Field string
	Key   string
	Args  []any
}

func (e *ValidationError) Error() string {
	if len(e.Args) == 0 {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Key)
	}
	return fmt.Sprintf("invalid %s: %s %v", e.Field, e.Key, e.Args)
}

// Message returns the localisable form of the error.
func (e *ValidationError) Message() Message {
	return Message{Key: e.Key, Args: e.Args}
}

// Invalid builds a ValidationError.
func Invalid(field, key string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Key: key, Args: args}
}

// SaveError reports an I/O failure while writing the annotated dataset.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("save failed: %v", e.Err)
	}
	return fmt.Sprintf("save to %s failed: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }
