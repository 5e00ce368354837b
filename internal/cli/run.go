// Package cli wires configuration, logging, metrics and the runner into the
// labelwiz command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/labelwiz"
	"github.com/aretw0/labelwiz/internal/config"
	"github.com/aretw0/labelwiz/internal/locale"
	"github.com/aretw0/labelwiz/internal/logging"
	"github.com/aretw0/labelwiz/internal/metrics"
	"github.com/aretw0/labelwiz/internal/presentation/tui"
	"github.com/aretw0/labelwiz/internal/wizard"
	"github.com/aretw0/labelwiz/pkg/runner"
)

// RunOptions contains the command-line settings of a labeling run.
// Non-zero values override the config file.
type RunOptions struct {
	ConfigPath  string
	Debug       bool
	MetricsAddr string

	// Stdin and Stdout default to the process streams. When both are
	// terminals the arrow-key prompter and markdown renderer are used.
	Stdin  io.Reader
	Stdout io.Writer
}

// Execute loads configuration and runs the wizard and annotation loops.
func Execute(ctx context.Context, opts RunOptions) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}
	logger := logging.ForDebug(cfg.Debug)
	logger.Debug("configuration resolved",
		"language", cfg.Language,
		"reminder_interval", cfg.ReminderInterval,
		"metrics_addr", cfg.MetricsAddr,
	)

	stdin, stdout := opts.Stdin, opts.Stdout
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	interactive := isTerminal(stdin) && isTerminal(stdout)

	var rec *metrics.Recorder
	if cfg.MetricsAddr != "" {
		rec = metrics.New()
		metricsCtx, stopMetrics := context.WithCancel(ctx)
		defer stopMetrics()
		go func() {
			if err := rec.Serve(metricsCtx, cfg.MetricsAddr, logger); err != nil {
				logger.Error("metrics server failed", "addr", cfg.MetricsAddr, "err", err)
			}
		}()
	}

	engine := wizard.NewEngine(
		wizard.WithLogger(logger),
		wizard.WithLifecycleHooks(combineHooks(debugHooks(logger), rec.Hooks())),
		wizard.WithLanguage(cfg.Language),
		wizard.WithMaxColumnsWarning(cfg.MaxColumnsWarning),
		wizard.WithMaxOptionsWarning(cfg.MaxOptionsWarning),
	)

	lang := cfg.Language
	if lang == "" {
		lang = locale.DefaultLanguage
	}
	cat, err := locale.New(lang)
	if err != nil {
		return err
	}

	var (
		prompter runner.Prompter
		renderer = tui.Plain
	)
	if interactive {
		tui.PrintBanner(stdout, labelwiz.Version)
		prompter = runner.NewSurveyPrompter()
		renderer = tui.NewRenderer()
	} else {
		prompter = runner.NewTextPrompter(stdin, stdout)
	}

	r := runner.New(prompter,
		runner.WithEngine(engine),
		runner.WithLogger(logger),
		runner.WithCatalog(cat),
		runner.WithRenderer(renderer),
		runner.WithMetrics(rec),
		runner.WithReminderInterval(cfg.ReminderInterval),
	)

	err = r.Run(ctx)
	logger.Debug("run finished", "err", err)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("labelwiz: %w", err)
	}
	return nil
}

func resolveConfig(opts RunOptions) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if opts.Debug {
		cfg.Debug = true
	}
	if opts.MetricsAddr != "" {
		cfg.MetricsAddr = opts.MetricsAddr
	}
	return cfg, cfg.Validate()
}
