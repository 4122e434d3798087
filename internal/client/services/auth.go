// Package services holds the client's use cases: signing in and out,
// scoring and saving assessments, and the journal and mood logs. Services
// validate input locally, call the backend through narrow interfaces and
// keep the session store current.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/zenora/internal/client/models"
	"github.com/dmitrijs2005/zenora/internal/logging"
)

// Authenticator is the auth half of the backend.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)
	Signup(ctx context.Context, name, email, password string) (models.AuthResponse, error)
}

// SessionWriter applies auth transitions. *session.Store satisfies it.
type SessionWriter interface {
	Login(ctx context.Context, user models.User, token string) error
	Logout(ctx context.Context)
}

type AuthService struct {
	client   Authenticator
	sessions SessionWriter
	log      logging.Logger
}

func NewAuthService(client Authenticator, sessions SessionWriter, log logging.Logger) *AuthService {
	if log == nil {
		log = logging.Discard()
	}
	return &AuthService{client: client, sessions: sessions, log: log}
}

// Login validates the form, authenticates and opens a session. The form is
// never modified, so a failed attempt can be retried as entered.
func (s *AuthService) Login(ctx context.Context, form LoginForm) (models.User, error) {
	form.normalize()
	if err := validateForm(&form); err != nil {
		return models.User{}, err
	}

	resp, err := s.client.Login(ctx, form.Email, form.Password)
	if err != nil {
		s.log.Debug(ctx, "login rejected", "error", err)
		return models.User{}, fmt.Errorf("login: %w", err)
	}
	return s.open(ctx, resp)
}

// Signup validates the form, creates the account and opens a session.
func (s *AuthService) Signup(ctx context.Context, form SignupForm) (models.User, error) {
	form.normalize()
	if err := validateForm(&form); err != nil {
		return models.User{}, err
	}

	resp, err := s.client.Signup(ctx, form.Name, form.Email, form.Password)
	if err != nil {
		s.log.Debug(ctx, "signup rejected", "error", err)
		return models.User{}, fmt.Errorf("signup: %w", err)
	}
	return s.open(ctx, resp)
}

func (s *AuthService) open(ctx context.Context, resp models.AuthResponse) (models.User, error) {
	if err := s.sessions.Login(ctx, resp.User, resp.Token); err != nil {
		return models.User{}, err
	}
	return resp.User, nil
}

// Logout ends the session. It cannot fail.
func (s *AuthService) Logout(ctx context.Context) {
	s.sessions.Logout(ctx)
}
