package wizard

import "github.com/aretw0/labelwiz/pkg/domain"

// Step names a wizard state.
type Step string

const (
	StepLanguage       Step = "language_select"
	StepFileSelect     Step = "file_select"
	StepFileStats      Step = "file_stats"
	StepHasLabelColumn Step = "has_label_column"
	StepSelectColumn   Step = "select_existing_column"
	StepNameColumn     Step = "name_new_column"
	StepLabelType      Step = "label_type_select"
	StepNumOptions     Step = "num_options"
	StepOptionEntries  Step = "option_entries"
	StepAnnotation     Step = "annotation"
)

// Defaults offered by the prompts.
const (
	DefaultColumnName = "label"
	DefaultNumOptions = 2
)

// InputKind distinguishes a submitted answer from a request to go back.
type InputKind int

const (
	InputSubmit InputKind = iota
	InputBack
)

// Input is the typed answer to the current step.
type Input struct {
	Kind   InputKind
	Value  string
	Values []string // OptionEntries only
}

// Submit answers a single-value step.
func Submit(value string) Input { return Input{Kind: InputSubmit, Value: value} }

// SubmitAll answers the option entries step.
func SubmitAll(values ...string) Input { return Input{Kind: InputSubmit, Values: values} }

// Back returns to the predecessor step.
func Back() Input { return Input{Kind: InputBack} }

// State is a snapshot of the wizard.
type State struct {
	Step    Step
	Config  domain.WizardConfig
	Dataset *domain.Dataset

	// HasLabel records the answer of the HasLabelColumn step.
	HasLabel bool
	// NumOptions is the confirmed option count.
	NumOptions int

	// createdColumn is the label column this wizard appended, if any.
	createdColumn string
}

// Done reports whether the wizard reached the annotation step.
func (s *State) Done() bool {
	return s != nil && s.Step == StepAnnotation
}

// Result returns the finished configuration and the dataset to annotate.
func (s *State) Result() (domain.WizardConfig, *domain.Dataset, error) {
	if !s.Done() {
		return domain.WizardConfig{}, nil, domain.ErrWizardIncomplete
	}
	cfg := s.Config.Clone()
	if err := cfg.Validate(); err != nil {
		return domain.WizardConfig{}, nil, err
	}
	return cfg, s.Dataset, nil
}

func (s *State) clone() *State {
	next := *s
	next.Config = s.Config.Clone()
	return &next
}
