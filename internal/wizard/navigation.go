package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/labelwiz/pkg/domain"
)

// submit validates the answer to the current step and computes the next state.
func (e *Engine) submit(s *State, in Input) (*State, []domain.ActionRequest, error) {
	next := s.clone()
	var notices []domain.ActionRequest

	switch s.Step {
	case StepLanguage:
		lang := strings.ToLower(strings.TrimSpace(in.Value))
		if !contains(e.languages, lang) {
			return nil, nil, domain.Invalid("language", "invalid_choice")
		}
		next.Config.Language = lang
		next.Step = StepFileSelect

	case StepFileSelect:
		path := cleanPath(in.Value)
		if path == "" {
			return nil, nil, domain.Invalid("path", "file_path_required")
		}
		ds, err := e.load(path)
		if err != nil {
			return nil, nil, err
		}
		if ds.NumColumns() > e.maxColumns {
			notices = append(notices, warning("max_columns_warning", ds.NumColumns()))
		}
		// A new file invalidates every choice made about the previous one.
		next.Config = domain.WizardConfig{Language: s.Config.Language, SourcePath: path}
		next.Dataset = ds
		next.HasLabel = false
		next.NumOptions = 0
		next.createdColumn = ""
		next.Step = StepFileStats

	case StepFileStats:
		ok, err := parseConfirm(in.Value, true)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			next.Step = StepFileSelect
			break
		}
		next.Step = StepHasLabelColumn

	case StepHasLabelColumn:
		ok, err := parseConfirm(in.Value, false)
		if err != nil {
			return nil, nil, err
		}
		next.HasLabel = ok
		if ok {
			next.Step = StepSelectColumn
		} else {
			next.Step = StepNameColumn
		}

	case StepSelectColumn:
		column := in.Value
		if !s.Dataset.HasColumn(column) {
			column = strings.TrimSpace(column)
		}
		if !s.Dataset.HasColumn(column) {
			return nil, nil, domain.Invalid("column", "unknown_column", column)
		}
		next.Config.LabelColumn = column
		next.Config.NewColumn = column == s.createdColumn
		next.Step = StepLabelType

	case StepNameColumn:
		name := strings.TrimSpace(in.Value)
		if name == "" {
			return nil, nil, domain.Invalid("column", "label_name_required")
		}
		if name != s.createdColumn {
			if s.Dataset.HasColumn(name) {
				return nil, nil, domain.Invalid("column", "column_exists", name)
			}
			if err := e.replaceCreatedColumn(s, name); err != nil {
				return nil, nil, err
			}
			next.createdColumn = name
		}
		next.Config.LabelColumn = name
		next.Config.NewColumn = true
		next.Step = StepLabelType

	case StepLabelType:
		lt, ok := domain.ParseLabelType(in.Value)
		if !ok {
			return nil, nil, domain.Invalid("label_type", "invalid_label_type")
		}
		next.Config.LabelType = lt
		if lt == domain.LabelText {
			next.Config.LabelOptions = nil
			next.Step = StepAnnotation
			break
		}
		next.Step = StepNumOptions

	case StepNumOptions:
		n, err := strconv.Atoi(strings.TrimSpace(in.Value))
		if err != nil || n < 1 || n > MaxOptionCount {
			return nil, nil, domain.Invalid("num_options", "invalid_option_count", MaxOptionCount)
		}
		if n > e.maxOptions {
			notices = append(notices, warning("max_options_warning", n))
		}
		next.NumOptions = n
		next.Step = StepOptionEntries

	case StepOptionEntries:
		if len(in.Values) != s.NumOptions {
			return nil, nil, domain.Invalid("options", "invalid_option_count", MaxOptionCount)
		}
		options := make([]string, len(in.Values))
		for i, v := range in.Values {
			v = strings.TrimSpace(v)
			if v == "" {
				return nil, nil, domain.Invalid("options", "option_required", i+1)
			}
			options[i] = v
		}
		next.Config.LabelOptions = options
		next.Step = StepAnnotation

	default:
		return nil, nil, fmt.Errorf("unknown step %q", s.Step)
	}

	if next.Step == StepAnnotation {
		if err := next.Config.Validate(); err != nil {
			return nil, nil, err
		}
	}
	return next, notices, nil
}

// replaceCreatedColumn appends name to every row, dropping the column a
// previous visit of this step appended.
func (e *Engine) replaceCreatedColumn(s *State, name string) error {
	if s.createdColumn != "" && s.Dataset.HasColumn(s.createdColumn) {
		if err := s.Dataset.RemoveColumn(s.createdColumn); err != nil {
			return err
		}
	}
	if err := s.Dataset.AddColumn(name); err != nil {
		return err
	}
	e.logger.Debug("label column appended", "column", name, "rows", s.Dataset.NumRows())
	return nil
}

// parseConfirm accepts y/yes/true/1 and n/no/false/0; empty input yields def.
func parseConfirm(raw string, def bool) (bool, error) {
	clean := strings.ToLower(strings.TrimSpace(raw))
	switch clean {
	case "":
		return def, nil
	case "y", "yes", "true", "1":
		return true, nil
	case "n", "no", "false", "0":
		return false, nil
	}
	return false, domain.Invalid("confirm", "invalid_confirm")
}

// cleanPath trims whitespace and the quotes terminals add to dropped paths.
func cleanPath(raw string) string {
	p := strings.TrimSpace(raw)
	if len(p) >= 2 {
		if (p[0] == '"' && p[len(p)-1] == '"') || (p[0] == '\'' && p[len(p)-1] == '\'') {
			p = p[1 : len(p)-1]
		}
	}
	return p
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
