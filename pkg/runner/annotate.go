package runner

import (
	"context"

	"github.com/aretw0/labelwiz/internal/annotate"
	"github.com/aretw0/labelwiz/internal/presentation/tui"
	"github.com/aretw0/labelwiz/pkg/domain"
)

// runAnnotation drives the record loop for one session.
func (r *Runner) runAnnotation(signals *SignalManager, cfg domain.WizardConfig, ds *domain.Dataset) error {
	opts := append([]annotate.Option{
		annotate.WithLogger(r.logger),
		annotate.WithMetrics(r.metrics),
	}, r.sessionOpts...)
	sess, err := annotate.NewSession(cfg, ds, opts...)
	if err != nil {
		return err
	}

	// Reminders queue here and are shown before the next prompt so output
	// never interleaves with a prompt being typed.
	pending := make(chan func(), 1)
	reminder := annotate.NewReminder(sess, r.reminderInterval, func(dismiss func()) {
		select {
		case pending <- dismiss:
		default:
			dismiss()
		}
	})
	reminderCtx, stopReminder := context.WithCancel(signals.parent)
	defer stopReminder()
	go reminder.Run(reminderCtx)

	r.print(signals.Context(), r.catalog.Get("annotation_help"))
	redraw := true
	for {
		ctx := signals.Context()
		if redraw {
			r.showRecord(ctx, sess.Current())
		}
		select {
		case dismiss := <-pending:
			r.notify(ctx, domain.LevelWarning, r.catalog.Get("save_reminder"))
			dismiss()
		default:
		}

		line, err := r.prompter.Input(ctx, InputConfig{
			Message: r.catalog.Sprintf("label_prompt", cfg.LabelColumn),
		})
		if err != nil {
			closing, err := r.closeRequested(signals, err)
			if err != nil {
				return err
			}
			if closing {
				if err := r.close(signals.Context(), sess); err != nil {
					return err
				}
				redraw = false
				continue
			}
		}

		redraw, err = r.dispatch(signals.Context(), sess, parseCommand(line))
		if err != nil {
			return err
		}
	}
}

// dispatch applies one command and reports whether the record view changed.
// It returns errClosed when the session ended.
func (r *Runner) dispatch(ctx context.Context, sess *annotate.Session, cmd command) (bool, error) {
	switch cmd.name {
	case "":
		if cmd.raw != "" {
			value, err := sess.ResolveLabel(cmd.raw)
			if err == nil {
				err = sess.SetLabel(value)
			}
			if err != nil {
				r.reportError(ctx, err)
				return false, nil
			}
		}
		return r.move(ctx, sess.Next, "last_record")

	case cmdNext:
		return r.move(ctx, sess.Next, "last_record")

	case cmdPrev:
		return r.move(ctx, sess.Prev, "first_record")

	case cmdJump:
		if err := sess.Jump(cmd.arg); err != nil {
			r.reportError(ctx, err)
			return false, nil
		}
		return true, nil

	case cmdClear:
		if err := sess.SetLabel(""); err != nil {
			r.reportError(ctx, err)
			return false, nil
		}
		return true, nil

	case cmdSave:
		if name, ok := r.filename(ctx, cmd.arg); ok {
			r.save(ctx, sess, name)
		}
		return false, nil

	case cmdFinish:
		return false, r.finish(ctx, sess, cmd.arg)

	case cmdQuit:
		return false, r.close(ctx, sess)

	case cmdHelp:
		r.print(ctx, r.catalog.Get("annotation_help"))
		return false, nil
	}

	r.notify(ctx, domain.LevelWarning, r.catalog.Sprintf("unknown_command", cmd.raw))
	return false, nil
}

// move runs a navigation step. At the boundary the record is redrawn anyway
// so a label just set is visible.
func (r *Runner) move(ctx context.Context, step func() (bool, error), boundaryKey string) (bool, error) {
	moved, err := step()
	if err != nil {
		r.reportError(ctx, err)
		return false, nil
	}
	if !moved {
		r.notify(ctx, domain.LevelInfo, r.catalog.Get(boundaryKey))
	}
	return true, nil
}

func (r *Runner) showRecord(ctx context.Context, view annotate.RecordView) {
	md := tui.RecordMarkdown(view, r.catalog)
	out, err := r.renderer(md)
	if err != nil {
		out = md
	}
	r.print(ctx, out)
}

// filename returns arg or asks for one. ok is false when the prompt was
// abandoned.
func (r *Runner) filename(ctx context.Context, arg string) (name string, ok bool) {
	if arg != "" {
		return arg, true
	}
	name, err := r.prompter.Input(ctx, InputConfig{Message: r.catalog.Get("enter_filename")})
	if err != nil {
		r.logger.Debug("filename prompt abandoned", "err", err)
		return "", false
	}
	return name, true
}

// save dispatches a save and waits for its single result. It reports whether
// the file was written.
func (r *Runner) save(ctx context.Context, sess *annotate.Session, name string) bool {
	results, err := sess.Save(name)
	if err != nil {
		r.reportError(ctx, err)
		return false
	}
	r.notify(ctx, domain.LevelInfo, r.catalog.Get("saving"))

	// Navigation stays blocked until the worker reports back.
	res := <-results
	sess.ApplySaveResult(res)
	if res.Err != nil {
		r.reportError(ctx, res.Err)
		return false
	}

	r.notify(ctx, domain.LevelSuccess, r.catalog.Get("save_complete"))
	r.print(ctx, r.catalog.Sprintf("save_location", res.Report.Path))
	r.print(ctx, r.catalog.Sprintf("file_size", res.Report.HumanSize))
	r.print(ctx, r.catalog.Sprintf("save_time", res.Report.SavedAt.Format(domain.TimeLayout)))
	return true
}

// finish confirms discarding unsaved state, then saves and ends the session.
func (r *Runner) finish(ctx context.Context, sess *annotate.Session, arg string) error {
	ok, err := r.confirmClose(ctx, sess, "unsaved_changes")
	if err != nil || !ok {
		return err
	}
	name, ok := r.filename(ctx, arg)
	if !ok || !r.save(ctx, sess, name) {
		return nil
	}
	r.notify(ctx, domain.LevelSuccess, r.catalog.Get("goodbye"))
	return errClosed
}

// close ends the session without saving once the user confirms.
func (r *Runner) close(ctx context.Context, sess *annotate.Session) error {
	ok, err := r.confirmClose(ctx, sess, "exit_confirmation")
	if err != nil || !ok {
		return err
	}
	return errClosed
}

func (r *Runner) confirmClose(ctx context.Context, sess *annotate.Session, key string) (bool, error) {
	var promptErr error
	ok := sess.RequestClose(func() bool {
		yes, err := r.prompter.Confirm(ctx, ConfirmConfig{Message: r.catalog.Get(key)})
		if err != nil {
			promptErr = err
			return false
		}
		return yes
	})
	if promptErr != nil {
		return false, &unansweredError{err: promptErr}
	}
	return ok, nil
}

// unansweredError reports that input ended while a close confirmation was
// pending; unsaved labels are lost.
type unansweredError struct {
	err error
}

func (e *unansweredError) Error() string {
	return "exit without saving: confirmation not answered: " + e.err.Error()
}

func (e *unansweredError) Unwrap() error { return e.err }
