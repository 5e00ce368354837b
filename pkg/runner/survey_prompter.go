package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/aretw0/labelwiz/internal/presentation/tui"
	"github.com/aretw0/labelwiz/pkg/domain"
)

// SurveyPrompter uses arrow-key prompts. It needs a real terminal on stdin.
type SurveyPrompter struct {
	out    io.Writer
	styler *tui.Styler
	ask    func(p survey.Prompt, response any, opts ...survey.AskOpt) error
}

// NewSurveyPrompter creates a prompter writing content to os.Stdout.
func NewSurveyPrompter() *SurveyPrompter {
	return &SurveyPrompter{
		out:    os.Stdout,
		styler: tui.NewStyler(os.Stdout),
		ask:    survey.AskOne,
	}
}

func (p *SurveyPrompter) Print(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(p.out, strings.TrimRight(text, "\n"))
	return err
}

func (p *SurveyPrompter) Notify(ctx context.Context, level domain.Level, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(p.out, p.styler.Notice(level, text))
	return err
}

func (p *SurveyPrompter) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := p.ask(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return strings.TrimSpace(out), nil
}

func (p *SurveyPrompter) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	prompt := &survey.Confirm{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := p.ask(prompt, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func (p *SurveyPrompter) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	var out int
	prompt := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
		Help:    cfg.Help,
	}
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		prompt.Default = cfg.Options[cfg.DefaultIndex]
	}
	// An *int response receives the selected index.
	if err := p.ask(prompt, &out); err != nil {
		return -1, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
