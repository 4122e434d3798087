package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/zenora/internal/assessment"
)

var errAbandoned = errors.New("assessment abandoned")

// Assess walks the user through an instrument and shows the score. kind is
// "anxiety", "depression" or an instrument code; empty means anxiety.
// Starting an assessment always begins a fresh attempt.
func (a *App) Assess(ctx context.Context, kind string) error {
	k := assessment.Anxiety
	if kind != "" {
		parsed, err := assessment.ParseKind(kind)
		if err != nil {
			a.println("Unknown assessment:", kind, "(use anxiety or depression)")
			return err
		}
		k = parsed
	}

	if err := a.openWorkspace(k); err != nil {
		return err
	}
	w := a.workspace
	in := w.Attempt().Instrument()

	a.println(in.Title)
	a.println(in.Description)
	a.println("Answer with 0-3. Type 's' to submit, 'q' to stop.")

	for i := 0; i < len(in.Items); {
		it := in.Items[i]
		cmd, value, err := a.askItem(i+1, len(in.Items), it)
		if err != nil {
			return err
		}

		switch cmd {
		case "q":
			a.println("Assessment stopped. Type 'assess' to start again.")
			return errAbandoned
		case "s":
			if done, err := a.submit(ctx); done || err == nil {
				return err
			}
			continue
		}

		if err := w.Answer(it.ID, value); err != nil {
			a.println("Please choose one of the listed options.")
			continue
		}
		i++
	}

	_, err := a.submit(ctx)
	return err
}

func (a *App) openWorkspace(kind assessment.Kind) error {
	switch {
	case a.workspace == nil:
		w, err := a.assessments.NewWorkspace(kind)
		if err != nil {
			return err
		}
		a.workspace = w
	case a.workspace.Attempt().Kind() == kind:
		a.workspace.Reset()
	default:
		if err := a.workspace.Switch(kind); err != nil {
			return err
		}
	}
	return nil
}

// askItem prompts for one item. It returns either a command ("q" or "s")
// or a numeric value.
func (a *App) askItem(n, total int, it assessment.Item) (string, int, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Question %d of %d: %s\n", n, total, it.Prompt)
	for _, o := range it.Options {
		fmt.Fprintf(&b, "  %d) %s\n", o.Value, o.Label)
	}
	if v, ok := a.workspace.Attempt().Response(it.ID); ok {
		fmt.Fprintf(&b, "(current answer: %d)\n", v)
	}

	for {
		line, err := getSimpleText(a.reader, strings.TrimRight(b.String(), "\n"), a.out)
		if err != nil {
			return "", 0, err
		}
		line = strings.ToLower(line)
		if line == "q" || line == "s" {
			return line, 0, nil
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			a.println("Please enter a number between 0 and", assessment.MaxResponse)
			continue
		}
		return "", v, nil
	}
}

// submit scores the current attempt. done is true once a result exists;
// an incomplete attempt is reported and left open.
func (a *App) submit(ctx context.Context) (done bool, err error) {
	res, tk, err := a.workspace.Submit(ctx)
	if err != nil {
		a.report(err, "Assessment failed", "The assessment could not be scored")
		if errors.Is(err, assessment.ErrIncompleteSubmission) {
			return false, err
		}
		return true, err
	}

	in := a.workspace.Attempt().Instrument()
	a.println(fmt.Sprintf("Your score: %d / %d", res.Total, in.MaxScore()))
	a.println("Result:", string(res.Band))
	a.println(res.Support)

	if tk == nil {
		a.println("Log in to save your results to your profile.")
		return true, nil
	}
	a.saves = append(a.saves, tk)
	a.log.Debug(ctx, "assessment save started", "attempt_id", tk.Owner().String())
	return true, nil
}
