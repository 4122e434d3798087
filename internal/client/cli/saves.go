package cli

import (
	"context"

	"github.com/dmitrijs2005/zenora/internal/client/services"
)

// collectSaves reports finished background saves without blocking. A save
// whose attempt was reset or replaced still runs to completion; only a
// failure is reported for it.
func (a *App) collectSaves(ctx context.Context) {
	remaining := a.saves[:0]
	for _, tk := range a.saves {
		_, ok, err := tk.Result()
		if !ok {
			remaining = append(remaining, tk)
			continue
		}
		a.resolveSave(ctx, tk, err)
	}
	clear(a.saves[len(remaining):])
	a.saves = remaining
}

// waitSaves blocks until every in-flight save has finished or ctx is done.
func (a *App) waitSaves(ctx context.Context) {
	for _, tk := range a.saves {
		if _, err := tk.Wait(ctx); err != nil && ctx.Err() != nil {
			a.log.Warn(ctx, "exiting before assessment save finished", "attempt_id", tk.Owner().String())
			return
		}
	}
	a.collectSaves(ctx)
}

func (a *App) resolveSave(ctx context.Context, tk *services.SaveTask, err error) {
	current := a.workspace != nil && a.workspace.Resolve(tk)
	if err != nil {
		a.log.Warn(ctx, "assessment save failed", "attempt_id", tk.Owner().String(), "current", current, "error", err)
		a.notifier.Notify(noticeAssessNotSaved)
		return
	}
	if !current {
		a.log.Debug(ctx, "save finished for a replaced attempt", "attempt_id", tk.Owner().String())
		return
	}
	a.notifier.Notify(noticeAssessSaved)
}
