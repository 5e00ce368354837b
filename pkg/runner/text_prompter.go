package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/labelwiz/internal/presentation/tui"
	"github.com/aretw0/labelwiz/pkg/domain"
)

// TextPrompter implements line-based prompts over plain streams.
// Lines are read by a pump goroutine so a blocked read never prevents the
// caller from observing context cancellation.
type TextPrompter struct {
	Reader *bufio.Reader
	Writer io.Writer
	styler *tui.Styler

	maxInput  int
	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextPrompterOption configures a TextPrompter.
type TextPrompterOption func(*TextPrompter)

// WithMaxInputSize sets the longest accepted line in bytes.
func WithMaxInputSize(n int) TextPrompterOption {
	return func(p *TextPrompter) {
		p.maxInput = n
	}
}

// NewTextPrompter creates a prompter reading r and writing w.
func NewTextPrompter(r io.Reader, w io.Writer, opts ...TextPrompterOption) *TextPrompter {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	p := &TextPrompter{
		Reader:   bufio.NewReader(r),
		Writer:   w,
		styler:   tui.NewStyler(w),
		maxInput: DefaultMaxInputSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *TextPrompter) initPump() {
	p.startOnce.Do(func() {
		p.inputChan = make(chan inputResult)
		go p.pump()
	})
}

func (p *TextPrompter) pump() {
	for {
		text, err := p.Reader.ReadString('\n')

		// If we got text (even with EOF), send it
		if text != "" {
			p.inputChan <- inputResult{text: text}
		}

		if err != nil {
			if err == io.EOF {
				close(p.inputChan)
				return
			}
			p.inputChan <- inputResult{err: err}
			// Backoff for non-fatal errors to prevent CPU spikes on persistent failure
			time.Sleep(50 * time.Millisecond)
		}
	}
}

// readLine prints prompt and waits for the next sanitized line.
func (p *TextPrompter) readLine(ctx context.Context, prompt string) (string, error) {
	p.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			fmt.Fprint(p.Writer, prompt)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-p.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}
			clean, err := SanitizeInput(strings.TrimRight(res.text, "\r\n"), p.maxInput)
			if err != nil {
				fmt.Fprintln(p.Writer, p.styler.Notice(domain.LevelError, err.Error()))
				continue
			}
			return strings.TrimSpace(clean), nil
		}
	}
}

func (p *TextPrompter) Print(ctx context.Context, text string) error {
	_, err := fmt.Fprintln(p.Writer, strings.TrimRight(text, "\n"))
	return err
}

func (p *TextPrompter) Notify(ctx context.Context, level domain.Level, text string) error {
	_, err := fmt.Fprintln(p.Writer, p.styler.Notice(level, text))
	return err
}

func (p *TextPrompter) Input(ctx context.Context, cfg InputConfig) (string, error) {
	p.help(cfg.Help)
	prompt := cfg.Message
	if cfg.Default != "" {
		prompt += " [" + cfg.Default + "]"
	}
	line, err := p.readLine(ctx, prompt+": ")
	if err != nil {
		return "", err
	}
	if line == "" {
		return cfg.Default, nil
	}
	return line, nil
}

func (p *TextPrompter) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	p.help(cfg.Help)
	hint := "y/N"
	if cfg.Default {
		hint = "Y/n"
	}
	for {
		line, err := p.readLine(ctx, fmt.Sprintf("%s [%s]: ", cfg.Message, hint))
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "":
			return cfg.Default, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// Select lists the options numbered from 1. The answer may be the number or
// the option text.
func (p *TextPrompter) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	p.help(cfg.Help)
	for i, opt := range cfg.Options {
		marker := " "
		if i == cfg.DefaultIndex {
			marker = "*"
		}
		fmt.Fprintf(p.Writer, " %s %d) %s\n", marker, i+1, opt)
	}

	prompt := cfg.Message
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		prompt += " [" + strconv.Itoa(cfg.DefaultIndex+1) + "]"
	}
	line, err := p.readLine(ctx, prompt+": ")
	if err != nil {
		return -1, err
	}
	if line == "" && cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		return cfg.DefaultIndex, nil
	}
	if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(cfg.Options) {
		return n - 1, nil
	}
	for i, opt := range cfg.Options {
		if strings.EqualFold(opt, line) {
			return i, nil
		}
	}
	return -1, domain.Invalid("choice", "invalid_choice")
}

func (p *TextPrompter) help(text string) {
	if text != "" {
		fmt.Fprintln(p.Writer, p.styler.Faint(text))
	}
}
