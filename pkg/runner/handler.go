package runner

import (
	"context"
	"errors"

	"github.com/aretw0/labelwiz/pkg/domain"
)

// ErrAborted is returned by a Prompter when the user interrupts a prompt.
var ErrAborted = errors.New("prompt aborted")

// InputConfig configures a free text prompt.
type InputConfig struct {
	Message string
	Default string
	Help    string
}

// ConfirmConfig configures a yes/no prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// SelectConfig configures a single choice prompt.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Help         string
}

// Prompter is the strategy for interacting with the user.
// This allows switching between line-based and arrow-key terminals, and
// feeding scripted input in tests.
type Prompter interface {
	// Print presents content. Text may be multi-line.
	Print(ctx context.Context, text string) error

	// Notify presents a message that does not expect an answer.
	Notify(ctx context.Context, level domain.Level, text string) error

	// Input reads a line of text. An empty answer yields cfg.Default.
	Input(ctx context.Context, cfg InputConfig) (string, error)

	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)

	// Select returns the index of the chosen option.
	Select(ctx context.Context, cfg SelectConfig) (int, error)
}
