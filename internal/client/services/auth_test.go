package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/zenora/internal/client/models"
	"github.com/dmitrijs2005/zenora/internal/client/session"
	"github.com/dmitrijs2005/zenora/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_OpensSession(t *testing.T) {
	fb := &fakeBackend{authResp: models.AuthResponse{User: ann, Token: "tok-1"}}
	store := anonStore()
	svc := NewAuthService(fb, store, nil)

	u, err := svc.Login(context.Background(), LoginForm{Email: "  ann@example.org ", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, ann, u)
	assert.Equal(t, "ann@example.org", fb.lastEmail)
	assert.Equal(t, "pw", fb.lastPass)

	cur := store.Current()
	assert.Equal(t, session.Authenticated, cur.Status)
	assert.Equal(t, "tok-1", cur.Token)
}

func TestLogin_Validation(t *testing.T) {
	tests := []struct {
		name string
		form LoginForm
		want error
	}{
		{"no email", LoginForm{Password: "pw"}, ErrMissingFields},
		{"no password", LoginForm{Email: "ann@example.org"}, ErrMissingFields},
		{"blank email", LoginForm{Email: "   ", Password: "pw"}, ErrMissingFields},
		{"bad email", LoginForm{Email: "ann", Password: "pw"}, ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := &fakeBackend{}
			store := anonStore()
			svc := NewAuthService(fb, store, nil)

			_, err := svc.Login(context.Background(), tt.form)
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, common.ErrValidation)
			assert.Zero(t, fb.logins, "backend must not be called")
			assert.Equal(t, session.Anonymous, store.Current().Status)
		})
	}
}

func TestLogin_RejectedKeepsAnonymous(t *testing.T) {
	rejected := errors.New("invalid credentials")
	fb := &fakeBackend{authErr: rejected}
	store := anonStore()
	svc := NewAuthService(fb, store, nil)

	form := LoginForm{Email: "ann@example.org", Password: "pw"}
	_, err := svc.Login(context.Background(), form)
	require.ErrorIs(t, err, rejected)
	assert.False(t, errors.Is(err, common.ErrValidation))
	assert.Equal(t, session.Anonymous, store.Current().Status)
	assert.Equal(t, "ann@example.org", form.Email, "entered values are kept")
}

func TestLogin_MalformedAuthResponse(t *testing.T) {
	fb := &fakeBackend{authResp: models.AuthResponse{User: ann}}
	store := anonStore()
	svc := NewAuthService(fb, store, nil)

	_, err := svc.Login(context.Background(), LoginForm{Email: "ann@example.org", Password: "pw"})
	require.ErrorIs(t, err, session.ErrIncompleteSession)
	assert.Equal(t, session.Anonymous, store.Current().Status)
}

func TestSignup_Validation(t *testing.T) {
	full := SignupForm{Name: "Ann", Email: "ann@example.org", Password: "pw", ConfirmPassword: "pw"}

	missing := full
	missing.Name = ""
	mismatch := full
	mismatch.ConfirmPassword = "other"
	badEmail := full
	badEmail.Email = "nope"
	missingAndMismatch := mismatch
	missingAndMismatch.Email = ""

	tests := []struct {
		name string
		form SignupForm
		want error
	}{
		{"missing name", missing, ErrMissingFields},
		{"mismatch", mismatch, ErrPasswordMismatch},
		{"bad email", badEmail, ErrInvalidEmail},
		{"missing wins over mismatch", missingAndMismatch, ErrMissingFields},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := &fakeBackend{}
			svc := NewAuthService(fb, anonStore(), nil)
			_, err := svc.Signup(context.Background(), tt.form)
			require.ErrorIs(t, err, tt.want)
			assert.Zero(t, fb.signups)
		})
	}
}

func TestSignup_OpensSession(t *testing.T) {
	fb := &fakeBackend{authResp: models.AuthResponse{User: ann, Token: "tok-2"}}
	store := anonStore()
	svc := NewAuthService(fb, store, nil)

	_, err := svc.Signup(context.Background(), SignupForm{
		Name: " Ann ", Email: "ann@example.org", Password: "pw", ConfirmPassword: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ann", fb.lastName)
	assert.Equal(t, "tok-2", store.Token())
}

func TestLogout(t *testing.T) {
	store := authedStore(t)
	svc := NewAuthService(&fakeBackend{}, store, nil)

	svc.Logout(context.Background())
	svc.Logout(context.Background())
	assert.Equal(t, session.Session{Status: session.Anonymous}, store.Current())
}
