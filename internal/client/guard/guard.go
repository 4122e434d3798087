// Package guard decides whether a protected destination may be shown for
// the current session.
package guard

import (
	"context"

	"github.com/dmitrijs2005/zenora/internal/client/notice"
	"github.com/dmitrijs2005/zenora/internal/client/session"
)

// Decision is the outcome of evaluating a session against a protected
// destination.
type Decision int

const (
	// Verifying means the session is still being restored. Neither the
	// destination nor a redirect may be rendered.
	Verifying Decision = iota
	Allow
	Redirect
)

func (d Decision) String() string {
	switch d {
	case Verifying:
		return "verifying"
	case Allow:
		return "allow"
	case Redirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Destination names a navigable screen.
type Destination string

const (
	Login   Destination = "login"
	Mood    Destination = "mood"
	Journal Destination = "journal"
	History Destination = "history"
)

var protected = map[Destination]bool{
	Mood:    true,
	Journal: true,
	History: true,
}

// IsProtected reports whether d requires an authenticated session.
func IsProtected(d Destination) bool {
	return protected[d]
}

var deniedNotice = notice.Notice{
	Title:       "Authentication required",
	Description: "Please log in to access this page",
	Variant:     notice.Default,
}

// Evaluate maps a session snapshot to a decision. It has no side effects.
func Evaluate(s session.Session) Decision {
	switch s.Status {
	case session.Authenticated:
		return Allow
	case session.Anonymous:
		return Redirect
	default:
		return Verifying
	}
}

// Outcome is what the caller should render. RedirectTo is set only for
// Redirect.
type Outcome struct {
	Decision   Decision
	RedirectTo Destination
}

// SessionSource yields the current session snapshot.
type SessionSource interface {
	Current() session.Session
}

type Guard struct {
	sessions SessionSource
	notifier notice.Notifier
}

func New(sessions SessionSource, notifier notice.Notifier) *Guard {
	return &Guard{sessions: sessions, notifier: notifier}
}

// Check evaluates dest against the current session. A denied check emits a
// single notice and points at the login screen; the requested destination
// is not remembered.
func (g *Guard) Check(_ context.Context, dest Destination) Outcome {
	if !IsProtected(dest) {
		return Outcome{Decision: Allow}
	}

	d := Evaluate(g.sessions.Current())
	if d != Redirect {
		return Outcome{Decision: d}
	}

	if g.notifier != nil {
		g.notifier.Notify(deniedNotice)
	}
	return Outcome{Decision: Redirect, RedirectTo: Login}
}
