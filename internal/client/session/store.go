// Package session holds the client's notion of who is signed in.
//
// A Store is created Pending, moves to Anonymous or Authenticated once
// Rehydrate has read the durable record, and from then on only Login and
// Logout change it. Readers get immutable snapshots; a Session value is
// never modified after it is published.
package session

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/dmitrijs2005/zenora/internal/client/models"
	"github.com/dmitrijs2005/zenora/internal/logging"
)

// Session is a point-in-time view of the store. User and Token are set
// together and only when Status is Authenticated.
type Session struct {
	User   *models.User
	Token  string
	Status Status
}

func (s Session) IsAuthenticated() bool {
	return s.Status == Authenticated
}

var (
	pendingSession   = &Session{Status: Pending}
	anonymousSession = &Session{Status: Anonymous}
)

// Store is the process-wide session holder. Pass it explicitly to whatever
// needs it; it is safe for concurrent use.
type Store struct {
	current atomic.Pointer[Session]
	storage Storage
	log     logging.Logger
}

// NewStore returns a Pending store backed by storage. Call Rehydrate to
// resolve it.
func NewStore(storage Storage, log logging.Logger) *Store {
	if log == nil {
		log = logging.Discard()
	}
	s := &Store{storage: storage, log: log}
	s.current.Store(pendingSession)
	return s
}

// Rehydrate loads the persisted session. Absent or unreadable records leave
// the store Anonymous. If Login or Logout already ran, the loaded record is
// discarded and the newer state is kept.
func (s *Store) Rehydrate(ctx context.Context) Session {
	next := s.load(ctx)
	if s.current.CompareAndSwap(pendingSession, next) {
		s.log.Debug(ctx, "session rehydrated", "status", next.Status.String())
	}
	return s.Current()
}

func (s *Store) load(ctx context.Context) *Session {
	if s.storage == nil {
		return anonymousSession
	}

	sess, err := s.storage.Load(ctx)
	switch {
	case err == nil:
		return &sess
	case errors.Is(err, ErrNoSession):
		return anonymousSession
	case errors.Is(err, ErrCorruptRecord):
		s.log.Warn(ctx, "discarding unreadable session record", "error", err)
		if err := s.storage.Clear(ctx); err != nil {
			s.log.Warn(ctx, "failed to purge session record", "error", err)
		}
		return anonymousSession
	default:
		s.log.Warn(ctx, "failed to read session record", "error", err)
		return anonymousSession
	}
}

// Login replaces the session with user and token and writes it through to
// storage. A failed write is logged; the in-memory session stays
// Authenticated for the rest of the process.
func (s *Store) Login(ctx context.Context, user models.User, token string) error {
	if user.ID == "" || token == "" {
		return ErrIncompleteSession
	}

	u := user
	next := &Session{User: &u, Token: token, Status: Authenticated}
	s.current.Store(next)

	if s.storage != nil {
		if err := s.storage.Save(ctx, *next); err != nil {
			s.log.Warn(ctx, "failed to persist session", "error", err)
		}
	}
	s.log.Info(ctx, "signed in", "user_id", u.ID)
	return nil
}

// Logout drops the session and purges the durable record. It is safe to
// call when already anonymous.
func (s *Store) Logout(ctx context.Context) {
	prev := s.current.Swap(anonymousSession)

	if s.storage != nil {
		if err := s.storage.Clear(ctx); err != nil {
			s.log.Warn(ctx, "failed to purge session record", "error", err)
		}
	}
	if prev.IsAuthenticated() {
		s.log.Info(ctx, "signed out", "user_id", prev.User.ID)
	}
}

// Current returns the latest snapshot.
func (s *Store) Current() Session {
	return *s.current.Load()
}

// Token returns the bearer credential, or "" without a session.
func (s *Store) Token() string {
	return s.current.Load().Token
}
