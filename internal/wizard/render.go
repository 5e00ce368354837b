package wizard

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/labelwiz/pkg/domain"
)

// Render describes the current step without changing it.
func (e *Engine) Render(ctx context.Context, s *State) ([]domain.ActionRequest, error) {
	if s == nil {
		return nil, fmt.Errorf("render: nil state")
	}
	_, canGoBack := e.predecessor(s)

	switch s.Step {
	case StepLanguage:
		def := s.Config.Language
		if def == "" {
			def = e.languages[0]
		}
		labels := make([]domain.Message, len(e.languages))
		for i, lang := range e.languages {
			labels[i] = domain.Msg("language." + lang)
		}
		return []domain.ActionRequest{
			content("language_selection"),
			input(domain.InputRequest{
				Type:    domain.InputChoice,
				Prompt:  domain.Msg("language_selection"),
				Options: append([]string(nil), e.languages...),
				Labels:  labels,
				Default: def,
			}),
		}, nil

	case StepFileSelect:
		return []domain.ActionRequest{
			content("select_file"),
			content("file_types"),
			input(domain.InputRequest{
				Type:      domain.InputText,
				Prompt:    domain.Msg("file_path_prompt"),
				Default:   s.Config.SourcePath,
				AllowBack: canGoBack,
			}),
		}, nil

	case StepFileStats:
		if s.Dataset == nil {
			return nil, domain.ErrNoDataset
		}
		return []domain.ActionRequest{
			content("file_stats"),
			content("total_rows", s.Dataset.NumRows()),
			content("total_columns", s.Dataset.NumColumns()),
			content("column_names", strings.Join(s.Dataset.Columns(), ", ")),
			input(domain.InputRequest{
				Type:      domain.InputConfirm,
				Prompt:    domain.Msg("confirm_proceed"),
				Default:   "yes",
				AllowBack: canGoBack,
			}),
		}, nil

	case StepHasLabelColumn:
		def := "no"
		if s.HasLabel {
			def = "yes"
		}
		return []domain.ActionRequest{
			input(domain.InputRequest{
				Type:      domain.InputConfirm,
				Prompt:    domain.Msg("has_label_column"),
				Default:   def,
				AllowBack: canGoBack,
			}),
		}, nil

	case StepSelectColumn:
		if s.Dataset == nil {
			return nil, domain.ErrNoDataset
		}
		columns := s.Dataset.Columns()
		def := columns[0]
		if s.Dataset.HasColumn(s.Config.LabelColumn) {
			def = s.Config.LabelColumn
		}
		return []domain.ActionRequest{
			input(domain.InputRequest{
				Type:      domain.InputChoice,
				Prompt:    domain.Msg("select_label_column"),
				Options:   columns,
				Default:   def,
				AllowBack: canGoBack,
			}),
		}, nil

	case StepNameColumn:
		def := DefaultColumnName
		if s.createdColumn != "" {
			def = s.createdColumn
		}
		return []domain.ActionRequest{
			input(domain.InputRequest{
				Type:      domain.InputText,
				Prompt:    domain.Msg("enter_label_name"),
				Default:   def,
				AllowBack: canGoBack,
			}),
		}, nil

	case StepLabelType:
		def := string(domain.LabelCategorical)
		if s.Config.LabelType != "" {
			def = string(s.Config.LabelType)
		}
		return []domain.ActionRequest{
			input(domain.InputRequest{
				Type:      domain.InputChoice,
				Prompt:    domain.Msg("label_type"),
				Options:   []string{string(domain.LabelCategorical), string(domain.LabelText)},
				Labels:    []domain.Message{domain.Msg("categorical"), domain.Msg("text")},
				Default:   def,
				AllowBack: canGoBack,
			}),
		}, nil

	case StepNumOptions:
		def := DefaultNumOptions
		if s.NumOptions > 0 {
			def = s.NumOptions
		}
		return []domain.ActionRequest{
			input(domain.InputRequest{
				Type:      domain.InputText,
				Prompt:    domain.Msg("num_options"),
				Default:   strconv.Itoa(def),
				AllowBack: canGoBack,
			}),
		}, nil

	case StepOptionEntries:
		return []domain.ActionRequest{
			content("enter_options"),
			input(domain.InputRequest{
				Type:      domain.InputMultiText,
				Prompt:    domain.Msg("enter_options"),
				Slots:     s.NumOptions,
				SlotLabel: domain.Msg("option"),
				AllowBack: canGoBack,
			}),
		}, nil

	case StepAnnotation:
		return []domain.ActionRequest{content("annotation_title")}, nil
	}
	return nil, fmt.Errorf("render: unknown step %q", s.Step)
}

func content(key string, args ...any) domain.ActionRequest {
	return domain.ActionRequest{Type: domain.ActionRenderContent, Payload: domain.Msg(key, args...)}
}

func input(req domain.InputRequest) domain.ActionRequest {
	return domain.ActionRequest{Type: domain.ActionRequestInput, Payload: req}
}
