package domain

import (
	"fmt"
	"strings"
	"time"
)

// LabelType is the kind of value a label column accepts.
type LabelType string

const (
	// LabelCategorical restricts labels to a declared list of options.
	LabelCategorical LabelType = "categorical"
	// LabelText accepts any string.
	LabelText LabelType = "text"
)

// ParseLabelType accepts the canonical names, case-insensitively.
func ParseLabelType(s string) (LabelType, bool) {
	switch LabelType(strings.ToLower(strings.TrimSpace(s))) {
	case LabelCategorical:
		return LabelCategorical, true
	case LabelText:
		return LabelText, true
	}
	return "", false
}

// WizardConfig is the label setup produced by the wizard.
// It is built step by step and never modified once annotation begins.
type WizardConfig struct {
	SourcePath   string    `json:"source_path"`
	Language     string    `json:"language"`
	LabelColumn  string    `json:"label_column"`
	NewColumn    bool      `json:"new_column"`
	LabelType    LabelType `json:"label_type"`
	LabelOptions []string  `json:"label_options,omitempty"`
}

// Validate checks that the configuration is complete enough to annotate.
func (c WizardConfig) Validate() error {
	if c.SourcePath == "" {
		return fmt.Errorf("%w: source path missing", ErrWizardIncomplete)
	}
	if c.LabelColumn == "" {
		return fmt.Errorf("%w: label column missing", ErrWizardIncomplete)
	}
	switch c.LabelType {
	case LabelCategorical:
		if len(c.LabelOptions) == 0 {
			return fmt.Errorf("%w: categorical label without options", ErrWizardIncomplete)
		}
	case LabelText:
		if len(c.LabelOptions) != 0 {
			return fmt.Errorf("free-text label must not declare options")
		}
	default:
		return fmt.Errorf("%w: unknown label type %q", ErrWizardIncomplete, c.LabelType)
	}
	return nil
}

// Clone returns a copy that shares no slices with c.
func (c WizardConfig) Clone() WizardConfig {
	c.LabelOptions = append([]string(nil), c.LabelOptions...)
	return c
}

// AnnotationState is the mutable part of an annotation session.
type AnnotationState struct {
	// Index is the 0-based position of the record in view.
	Index int `json:"index"`
	// Unsaved is true once a label was set after the last successful save.
	Unsaved bool `json:"unsaved"`
	// Control is the label value currently shown for the record in view.
	Control string `json:"control"`
}

// SaveReport describes a completed save.
type SaveReport struct {
	Path      string
	Size      int64
	HumanSize string
	SavedAt   time.Time
}

// TimeLayout is the timestamp format used in save reports.
const TimeLayout = "2006-01-02 15:04:05"
