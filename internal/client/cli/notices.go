package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/zenora/internal/assessment"
	"github.com/dmitrijs2005/zenora/internal/client/client"
	"github.com/dmitrijs2005/zenora/internal/client/notice"
	"github.com/dmitrijs2005/zenora/internal/client/services"
)

var (
	noticeWelcomeBack    = notice.Notice{Title: "Welcome back!", Description: "You've successfully logged in"}
	noticeAccountCreated = notice.Notice{Title: "Account created!", Description: "Welcome to ZENORA"}
	noticeLoggedOut      = notice.Notice{Title: "Logged out", Description: "See you next time"}
	noticeJournalSaved   = notice.Notice{Title: "Journal entry saved", Description: "Your thoughts have been recorded"}
	noticeMoodLogged     = notice.Notice{Title: "Mood logged!", Description: "Your mood has been recorded"}
	noticeAssessSaved    = notice.Notice{Title: "Assessment saved", Description: "Your results have been saved to your profile"}
	noticeAssessNotSaved = notice.Notice{
		Title:       "Error saving results",
		Description: "There was a problem saving your assessment",
		Variant:     notice.Destructive,
	}
)

// validationNotice maps a local validation failure to what the user sees.
// ok is false for errors that are not validation failures.
func validationNotice(err error) (n notice.Notice, ok bool) {
	n.Variant = notice.Destructive

	var inc *assessment.IncompleteError
	switch {
	case errors.As(err, &inc):
		n.Title = "Incomplete assessment"
		n.Description = fmt.Sprintf("Please answer all questions before submitting (%s)", unansweredText(inc.Unanswered))
	case errors.Is(err, services.ErrMissingFields):
		n.Title, n.Description = "Missing information", "Please fill in all fields"
	case errors.Is(err, services.ErrInvalidEmail):
		n.Title, n.Description = "Invalid email", "Please enter a valid email address"
	case errors.Is(err, services.ErrPasswordMismatch):
		n.Title, n.Description = "Passwords don't match", "Please make sure your passwords match"
	case errors.Is(err, services.ErrMissingTitle):
		n.Title, n.Description = "Missing title", "Please add a title for your journal entry"
	case errors.Is(err, services.ErrMissingContent):
		n.Title, n.Description = "Missing content", "Please write something in your journal entry"
	case errors.Is(err, services.ErrMissingMood):
		n.Title, n.Description = "Missing mood selection", "Please select how you're feeling"
	case errors.Is(err, services.ErrUnknownMood):
		n.Title, n.Description = "Unknown mood", "Choose one of: "+strings.Join(services.Moods, ", ")
	default:
		return notice.Notice{}, false
	}
	return n, true
}

func unansweredText(n int) string {
	if n == 1 {
		return "1 question unanswered"
	}
	return fmt.Sprintf("%d questions unanswered", n)
}

// failureNotice describes a backend failure. The description prefers the
// backend's own message when it sent one.
func failureNotice(title, fallback string, err error) notice.Notice {
	desc := fallback
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr) && apiErr.Message != "":
		desc = apiErr.Message
	case errors.Is(err, client.ErrUnavailable):
		desc = "The server is unavailable, please try again later"
	case errors.Is(err, client.ErrUnauthorized):
		desc = "Your session was rejected, please log in again"
	}
	return notice.Notice{Title: title, Description: desc, Variant: notice.Destructive}
}

// report shows err as a validation notice if it is one, else as a backend
// failure with the given title and fallback text.
func (a *App) report(err error, title, fallback string) {
	if n, ok := validationNotice(err); ok {
		a.notifier.Notify(n)
		return
	}
	a.notifier.Notify(failureNotice(title, fallback, err))
}
