package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/labelwiz/pkg/domain"
	"golang.org/x/term"
)

// isTerminal reports whether s is a file attached to a terminal.
func isTerminal(s any) bool {
	f, ok := s.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var _ io.Reader = (*os.File)(nil)

func debugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepEnter: func(ctx context.Context, e *domain.StepEvent) {
			logger.Debug("Enter Step", "step", e.Step, "from", e.Peer, "back", e.Back)
		},
		OnStepLeave: func(ctx context.Context, e *domain.StepEvent) {
			logger.Debug("Leave Step", "step", e.Step, "to", e.Peer)
		},
	}
}

// combineHooks calls every non-nil hook in order.
func combineHooks(all ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepEnter: func(ctx context.Context, e *domain.StepEvent) {
			for _, h := range all {
				if h.OnStepEnter != nil {
					h.OnStepEnter(ctx, e)
				}
			}
		},
		OnStepLeave: func(ctx context.Context, e *domain.StepEvent) {
			for _, h := range all {
				if h.OnStepLeave != nil {
					h.OnStepLeave(ctx, e)
				}
			}
		},
	}
}
