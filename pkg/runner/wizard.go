package runner

import (
	"context"
	"errors"
	"strings"

	"github.com/aretw0/labelwiz/internal/locale"
	"github.com/aretw0/labelwiz/internal/wizard"
	"github.com/aretw0/labelwiz/pkg/domain"
)

// backCommand returns to the previous wizard step from a text prompt.
const backCommand = ":b"

// runWizard loops Render, prompt, Navigate until the wizard is done.
func (r *Runner) runWizard(signals *SignalManager) (domain.WizardConfig, *domain.Dataset, error) {
	s := r.engine.Start(signals.Context())
	if s.Config.Language != "" {
		r.switchLanguage(s.Config.Language)
	}

	for !s.Done() {
		ctx := signals.Context()
		actions, err := r.engine.Render(ctx, s)
		if err != nil {
			return domain.WizardConfig{}, nil, err
		}
		r.showActions(ctx, actions)

		req, ok := domain.FindInput(actions)
		if !ok {
			return domain.WizardConfig{}, nil, errors.New("wizard step without input request")
		}
		in, err := r.ask(ctx, req)
		if err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				r.reportError(ctx, err)
				continue
			}
			closing, err := r.closeRequested(signals, err)
			if err != nil {
				return domain.WizardConfig{}, nil, err
			}
			if closing {
				return domain.WizardConfig{}, nil, errClosed
			}
		}

		next, notices, err := r.engine.Navigate(ctx, s, in)
		if err != nil {
			r.reportError(ctx, err)
			continue
		}
		if s.Step == wizard.StepLanguage {
			r.switchLanguage(next.Config.Language)
		}
		r.showActions(ctx, notices)
		s = next
	}

	actions, err := r.engine.Render(signals.Context(), s)
	if err == nil {
		r.showActions(signals.Context(), actions)
	}
	return s.Result()
}

func (r *Runner) switchLanguage(lang string) {
	cat, err := locale.New(lang)
	if err != nil {
		r.logger.Error("string table unavailable", "lang", lang, "err", err)
		return
	}
	r.catalog = cat
}

// ask prompts for req and converts the answer into a wizard input.
func (r *Runner) ask(ctx context.Context, req domain.InputRequest) (wizard.Input, error) {
	prompt := r.text(req.Prompt)
	help := ""
	if req.AllowBack {
		help = r.catalog.Get("back_hint")
	}

	switch req.Type {
	case domain.InputText:
		v, err := r.prompter.Input(ctx, InputConfig{Message: prompt, Default: req.Default, Help: help})
		if err != nil {
			return wizard.Input{}, err
		}
		if req.AllowBack && strings.TrimSpace(v) == backCommand {
			return wizard.Back(), nil
		}
		return wizard.Submit(v), nil

	case domain.InputMultiText:
		var values []string
		for i := 1; i <= req.Slots; i++ {
			slot := r.catalog.Sprintf(req.SlotLabel.Key, i)
			v, err := r.prompter.Input(ctx, InputConfig{Message: slot, Help: help})
			if err != nil {
				return wizard.Input{}, err
			}
			if req.AllowBack && strings.TrimSpace(v) == backCommand {
				return wizard.Back(), nil
			}
			help = ""
			values = append(values, v)
		}
		return wizard.SubmitAll(values...), nil

	case domain.InputConfirm:
		values := []string{"yes", "no"}
		labels := []domain.Message{domain.Msg("yes"), domain.Msg("no")}
		return r.choose(ctx, prompt, values, labels, req.Default, req.AllowBack)

	case domain.InputChoice:
		return r.choose(ctx, prompt, req.Options, req.Labels, req.Default, req.AllowBack)
	}
	return wizard.Input{}, errors.New("unsupported input type " + string(req.Type))
}

// choose runs a select over values, appending a back entry when allowed.
func (r *Runner) choose(ctx context.Context, prompt string, values []string, labels []domain.Message, def string, allowBack bool) (wizard.Input, error) {
	options := make([]string, len(values), len(values)+1)
	defIndex := 0
	for i, v := range values {
		options[i] = v
		if i < len(labels) {
			options[i] = r.text(labels[i])
		}
		if v == def {
			defIndex = i
		}
	}
	if allowBack {
		options = append(options, r.catalog.Get("back"))
	}

	idx, err := r.prompter.Select(ctx, SelectConfig{Message: prompt, Options: options, DefaultIndex: defIndex})
	if err != nil {
		return wizard.Input{}, err
	}
	if idx < 0 || idx >= len(options) {
		return wizard.Input{}, domain.Invalid("choice", "invalid_choice")
	}
	if allowBack && idx == len(values) {
		return wizard.Back(), nil
	}
	return wizard.Submit(values[idx]), nil
}
