package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/zenora/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	mu       sync.Mutex
	saved    *Session
	loadErr  error
	saveErr  error
	clearErr error

	saves, clears int
}

func (f *fakeStorage) Load(context.Context) (Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return Session{}, f.loadErr
	}
	if f.saved == nil {
		return Session{}, ErrNoSession
	}
	return *f.saved, nil
}

func (f *fakeStorage) Save(_ context.Context, s Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = &s
	return nil
}

func (f *fakeStorage) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clears++
	f.saved = nil
	return f.clearErr
}

var ann = models.User{ID: "u1", Name: "Ann", Email: "ann@example.org"}

func TestNewStore_StartsPending(t *testing.T) {
	s := NewStore(&fakeStorage{}, nil)
	cur := s.Current()
	assert.Equal(t, Pending, cur.Status)
	assert.False(t, cur.IsAuthenticated())
	assert.Nil(t, cur.User)
	assert.Empty(t, s.Token())
}

func TestRehydrate_EmptyStorageIsAnonymous(t *testing.T) {
	s := NewStore(&fakeStorage{}, nil)
	got := s.Rehydrate(context.Background())
	assert.Equal(t, Anonymous, got.Status)
	assert.Equal(t, Anonymous, s.Current().Status)
}

func TestLogin_RoundTripThroughReload(t *testing.T) {
	ctx := context.Background()
	st := &fakeStorage{}

	first := NewStore(st, nil)
	first.Rehydrate(ctx)
	require.NoError(t, first.Login(ctx, ann, "tok-1"))

	reloaded := NewStore(st, nil)
	got := reloaded.Rehydrate(ctx)

	require.Equal(t, Authenticated, got.Status)
	require.NotNil(t, got.User)
	assert.Equal(t, ann, *got.User)
	assert.Equal(t, "tok-1", got.Token)
	assert.Equal(t, first.Current(), reloaded.Current())
}

func TestLogin_ReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	s := NewStore(&fakeStorage{}, nil)
	s.Rehydrate(ctx)

	require.NoError(t, s.Login(ctx, ann, "tok-1"))
	bob := models.User{ID: "u2", Name: "Bob"}
	require.NoError(t, s.Login(ctx, bob, "tok-2"))

	cur := s.Current()
	assert.Equal(t, bob, *cur.User)
	assert.Equal(t, "tok-2", cur.Token)
}

func TestLogin_CopiesUser(t *testing.T) {
	ctx := context.Background()
	s := NewStore(&fakeStorage{}, nil)
	u := ann
	require.NoError(t, s.Login(ctx, u, "tok"))
	u.Name = "changed"
	assert.Equal(t, "Ann", s.Current().User.Name)
}

func TestLogin_IncompleteLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	st := &fakeStorage{}
	s := NewStore(st, nil)
	s.Rehydrate(ctx)

	require.ErrorIs(t, s.Login(ctx, ann, ""), ErrIncompleteSession)
	require.ErrorIs(t, s.Login(ctx, models.User{Name: "x"}, "tok"), ErrIncompleteSession)
	assert.Equal(t, Anonymous, s.Current().Status)
	assert.Zero(t, st.saves)
}

func TestLogin_SaveFailureKeepsSession(t *testing.T) {
	ctx := context.Background()
	st := &fakeStorage{saveErr: errors.New("disk full")}
	s := NewStore(st, nil)
	s.Rehydrate(ctx)

	require.NoError(t, s.Login(ctx, ann, "tok"))
	assert.True(t, s.Current().IsAuthenticated())
	assert.Equal(t, "tok", s.Token())
	assert.Equal(t, 1, st.saves)
}

func TestLogout_TwiceEqualsOnce(t *testing.T) {
	ctx := context.Background()
	st := &fakeStorage{}
	s := NewStore(st, nil)
	s.Rehydrate(ctx)
	require.NoError(t, s.Login(ctx, ann, "tok"))

	s.Logout(ctx)
	once := s.Current()
	s.Logout(ctx)
	twice := s.Current()

	assert.Equal(t, once, twice)
	assert.Equal(t, Session{Status: Anonymous}, twice)
	assert.Nil(t, st.saved)

	reloaded := NewStore(st, nil)
	assert.Equal(t, Anonymous, reloaded.Rehydrate(ctx).Status)
}

func TestLogout_ClearFailureStillAnonymous(t *testing.T) {
	ctx := context.Background()
	s := NewStore(&fakeStorage{clearErr: errors.New("locked")}, nil)
	require.NoError(t, s.Login(ctx, ann, "tok"))

	s.Logout(ctx)
	assert.Equal(t, Anonymous, s.Current().Status)
	assert.Empty(t, s.Token())
}

func TestRehydrate_CorruptRecordPurgedAndAnonymous(t *testing.T) {
	st := &fakeStorage{loadErr: ErrCorruptRecord}
	s := NewStore(st, nil)

	got := s.Rehydrate(context.Background())
	assert.Equal(t, Anonymous, got.Status)
	assert.Equal(t, 1, st.clears)
}

func TestRehydrate_ReadFailureIsAnonymous(t *testing.T) {
	st := &fakeStorage{loadErr: errors.New("io")}
	s := NewStore(st, nil)

	assert.Equal(t, Anonymous, s.Rehydrate(context.Background()).Status)
	assert.Zero(t, st.clears, "a transient read error must not purge the record")
}

func TestRehydrate_DoesNotOverrideEarlierLogin(t *testing.T) {
	ctx := context.Background()
	st := &fakeStorage{saved: &Session{User: &models.User{ID: "old"}, Token: "old", Status: Authenticated}}
	s := NewStore(st, nil)

	require.NoError(t, s.Login(ctx, ann, "new"))
	got := s.Rehydrate(ctx)

	assert.Equal(t, "new", got.Token)
	assert.Equal(t, "u1", got.User.ID)
}

func TestRehydrate_NilStorage(t *testing.T) {
	s := NewStore(nil, nil)
	assert.Equal(t, Anonymous, s.Rehydrate(context.Background()).Status)
	require.NoError(t, s.Login(context.Background(), ann, "t"))
	s.Logout(context.Background())
}

func TestStore_ConcurrentReadersSeeWholeSnapshots(t *testing.T) {
	ctx := context.Background()
	s := NewStore(&fakeStorage{}, nil)
	s.Rehydrate(ctx)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				cur := s.Current()
				if cur.IsAuthenticated() {
					assert.NotNil(t, cur.User)
					assert.NotEmpty(t, cur.Token)
				} else {
					assert.Nil(t, cur.User)
					assert.Empty(t, cur.Token)
				}
			}
		}()
	}

	for i := 0; i < 200; i++ {
		_ = s.Login(ctx, ann, "tok")
		s.Logout(ctx)
	}
	close(stop)
	wg.Wait()
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "anonymous", Anonymous.String())
	assert.Equal(t, "authenticated", Authenticated.String())
	assert.Equal(t, "unknown", Status(9).String())
}
