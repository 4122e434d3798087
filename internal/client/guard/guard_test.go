package guard

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/zenora/internal/client/models"
	"github.com/dmitrijs2005/zenora/internal/client/notice"
	"github.com/dmitrijs2005/zenora/internal/client/session"
	"github.com/stretchr/testify/assert"
)

type staticSession session.Session

func (s staticSession) Current() session.Session { return session.Session(s) }

var authed = staticSession{
	User:   &models.User{ID: "u1"},
	Token:  "tok",
	Status: session.Authenticated,
}

func TestEvaluate(t *testing.T) {
	assert.Equal(t, Verifying, Evaluate(session.Session{Status: session.Pending}))
	assert.Equal(t, Redirect, Evaluate(session.Session{Status: session.Anonymous}))
	assert.Equal(t, Allow, Evaluate(session.Session(authed)))
}

func TestCheck_PendingRendersNothing(t *testing.T) {
	var rec notice.Recorder
	g := New(staticSession{Status: session.Pending}, &rec)

	for _, d := range []Destination{Mood, Journal, History} {
		out := g.Check(context.Background(), d)
		assert.Equal(t, Verifying, out.Decision)
		assert.Empty(t, out.RedirectTo, "no redirect while verifying")
	}
	assert.Empty(t, rec.Notices())
}

func TestCheck_AnonymousRedirectsWithOneNotice(t *testing.T) {
	var rec notice.Recorder
	g := New(staticSession{Status: session.Anonymous}, &rec)

	out := g.Check(context.Background(), Journal)
	assert.Equal(t, Outcome{Decision: Redirect, RedirectTo: Login}, out)

	notices := rec.Notices()
	if assert.Len(t, notices, 1) {
		assert.Equal(t, "Authentication required", notices[0].Title)
		assert.Equal(t, "Please log in to access this page", notices[0].Description)
		assert.Equal(t, notice.Default, notices[0].Variant)
	}
}

func TestCheck_AuthenticatedAllows(t *testing.T) {
	var rec notice.Recorder
	g := New(authed, &rec)

	out := g.Check(context.Background(), History)
	assert.Equal(t, Outcome{Decision: Allow}, out)
	assert.Empty(t, rec.Notices())
}

func TestCheck_PublicDestinationAlwaysAllowed(t *testing.T) {
	var rec notice.Recorder
	g := New(staticSession{Status: session.Anonymous}, &rec)

	assert.Equal(t, Allow, g.Check(context.Background(), Login).Decision)
	assert.Equal(t, Allow, g.Check(context.Background(), Destination("assessment")).Decision)
	assert.Empty(t, rec.Notices())
}

func TestCheck_FollowsStoreTransitions(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(nil, nil)
	g := New(store, nil)

	assert.Equal(t, Verifying, g.Check(ctx, Mood).Decision)
	store.Rehydrate(ctx)
	assert.Equal(t, Redirect, g.Check(ctx, Mood).Decision)
	assert.NoError(t, store.Login(ctx, models.User{ID: "u1"}, "tok"))
	assert.Equal(t, Allow, g.Check(ctx, Mood).Decision)
	store.Logout(ctx)
	assert.Equal(t, Redirect, g.Check(ctx, Mood).Decision)
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "verifying", Verifying.String())
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "redirect", Redirect.String())
}
