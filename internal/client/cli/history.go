package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/zenora/internal/assessment"
	"github.com/dmitrijs2005/zenora/internal/client/guard"
)

// History lists saved assessment results with their bands.
func (a *App) History(ctx context.Context) error {
	if !a.enter(ctx, guard.History) {
		return nil
	}

	recs, err := a.assessments.History(ctx)
	if err != nil {
		a.report(err, "Error loading history", "There was a problem loading your results")
		return err
	}
	if len(recs) == 0 {
		a.println("No saved results yet. Type 'assess' to take an assessment.")
		return nil
	}

	for _, r := range recs {
		kind := assessment.Kind(r.Type)
		band, err := assessment.Interpret(kind, r.Score)
		label := string(band)
		if err != nil {
			label = "unrecognized result"
		}
		a.println(fmt.Sprintf("%s  %-10s %2d  %s", r.Date.Local().Format("2006-01-02"), kind.Label(), r.Score, label))
	}
	return nil
}
