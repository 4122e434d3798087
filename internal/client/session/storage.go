package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/zenora/internal/client/models"
	"github.com/dmitrijs2005/zenora/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/zenora/internal/common"
	"github.com/dmitrijs2005/zenora/internal/cryptox"
)

// Storage persists the authenticated session between runs.
type Storage interface {
	// Load returns ErrNoSession if nothing is stored and an error wrapping
	// ErrCorruptRecord if the stored record is unusable.
	Load(ctx context.Context) (Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}

const statusAuthenticated = "authenticated"

// record is the serialized form of a session.
type record struct {
	User   models.User `json:"user"`
	Token  string      `json:"token"`
	Status string      `json:"status"`
}

// MetadataStorage keeps the session record in the metadata repository under
// common.SessionNamespace, sealed with the device key.
type MetadataStorage struct {
	repo metadata.Repository
	key  []byte
}

func NewMetadataStorage(repo metadata.Repository, key []byte) *MetadataStorage {
	return &MetadataStorage{repo: repo, key: key}
}

func (m *MetadataStorage) Load(ctx context.Context) (Session, error) {
	sealed, err := m.repo.Get(ctx, common.SessionNamespace)
	if err != nil {
		return Session{}, fmt.Errorf("read session record: %w", err)
	}
	if sealed == nil {
		return Session{}, ErrNoSession
	}

	var rec record
	if err := cryptox.OpenJSON(sealed, m.key, &rec); err != nil {
		if errors.Is(err, cryptox.ErrInvalidKey) {
			return Session{}, err
		}
		return Session{}, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	if rec.Status != statusAuthenticated || rec.Token == "" || rec.User.ID == "" {
		return Session{}, fmt.Errorf("%w: incomplete record", ErrCorruptRecord)
	}

	u := rec.User
	return Session{User: &u, Token: rec.Token, Status: Authenticated}, nil
}

func (m *MetadataStorage) Save(ctx context.Context, s Session) error {
	if !s.IsAuthenticated() || s.User == nil {
		return m.Clear(ctx)
	}

	sealed, err := cryptox.SealJSON(record{User: *s.User, Token: s.Token, Status: statusAuthenticated}, m.key)
	if err != nil {
		return fmt.Errorf("seal session record: %w", err)
	}
	return m.repo.Set(ctx, common.SessionNamespace, sealed)
}

func (m *MetadataStorage) Clear(ctx context.Context) error {
	return m.repo.Delete(ctx, common.SessionNamespace)
}
