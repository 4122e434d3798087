package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/zenora/internal/client/guard"
)

var getMultiline = GetMultiline

const listTimeLayout = "Jan 2, 15:04"

// WriteJournal prompts for a title and a multi-line body and saves them.
func (a *App) WriteJournal(ctx context.Context) error {
	if !a.enter(ctx, guard.Journal) {
		return nil
	}

	title, err := getSimpleText(a.reader, "Entry title", a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Write your thoughts", a.out)
	if err != nil {
		return err
	}

	if _, err := a.journal.Save(ctx, title, content); err != nil {
		a.report(err, "Error saving entry", "There was a problem saving your journal entry")
		return err
	}
	a.notifier.Notify(noticeJournalSaved)
	return nil
}

func (a *App) ListJournal(ctx context.Context) error {
	if !a.enter(ctx, guard.Journal) {
		return nil
	}

	entries, err := a.journal.List(ctx)
	if err != nil {
		a.report(err, "Error loading journal", "There was a problem loading your entries")
		return err
	}
	if len(entries) == 0 {
		a.println("No journal entries yet. Type 'journal' to write one.")
		return nil
	}
	for _, e := range entries {
		a.println(fmt.Sprintf("%s  %s", e.CreatedAt.Local().Format(listTimeLayout), e.Title))
		a.println("   " + e.Content)
	}
	return nil
}
