package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/zenora/internal/client/guard"
	"github.com/dmitrijs2005/zenora/internal/client/services"
)

// LogMood asks how the user feels and an optional note.
func (a *App) LogMood(ctx context.Context) error {
	if !a.enter(ctx, guard.Mood) {
		return nil
	}

	mood, err := getSimpleText(a.reader, "How are you feeling? ("+strings.Join(services.Moods, ", ")+")", a.out)
	if err != nil {
		return err
	}
	note, err := getSimpleText(a.reader, "Add a note (optional)", a.out)
	if err != nil {
		return err
	}

	if _, err := a.moods.Log(ctx, mood, note); err != nil {
		a.report(err, "Error logging mood", "There was a problem recording your mood")
		return err
	}
	a.notifier.Notify(noticeMoodLogged)
	return nil
}

func (a *App) ListMoods(ctx context.Context) error {
	if !a.enter(ctx, guard.Mood) {
		return nil
	}

	entries, err := a.moods.List(ctx)
	if err != nil {
		a.report(err, "Error loading moods", "There was a problem loading your mood history")
		return err
	}
	if len(entries) == 0 {
		a.println("No moods logged yet. Type 'mood' to add one.")
		return nil
	}
	for _, e := range entries {
		line := fmt.Sprintf("%s  %s", e.CreatedAt.Local().Format(listTimeLayout), e.Mood)
		if e.Note != "" {
			line += "  " + e.Note
		}
		a.println(line)
	}
	return nil
}
