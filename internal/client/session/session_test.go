package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joytrade/internal/client/models"
	"joytrade/internal/logging"
)

type fakeAuthAPI struct {
	token       string
	loginToken  string
	loginErr    error
	regToken    string
	regUser     models.User
	regErr      error
	currentUser models.User
	currentErr  error
}

func (f *fakeAuthAPI) SetToken(token string) { f.token = token }
func (f *fakeAuthAPI) ClearToken()           { f.token = "" }

func (f *fakeAuthAPI) Login(context.Context, string, string) (string, error) {
	return f.loginToken, f.loginErr
}

func (f *fakeAuthAPI) Register(context.Context, string, string, string) (string, models.User, error) {
	return f.regToken, f.regUser, f.regErr
}

func (f *fakeAuthAPI) CurrentUser(context.Context) (models.User, error) {
	return f.currentUser, f.currentErr
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("secret"))
	require.NoError(t, err)
	return s
}

func TestInitializeValidToken(t *testing.T) {
	api := &fakeAuthAPI{currentUser: models.User{ID: 1, Username: "alice"}}
	store := &MemStore{Token: signedToken(t, time.Now().Add(time.Hour))}
	m := NewManager(api, store, logging.Nop{})

	m.Initialize(context.Background())

	require.True(t, m.LoggedIn())
	assert.Equal(t, "alice", m.CurrentUser().Username)
	assert.NoError(t, m.InitErr())
	assert.NotEmpty(t, api.token, "token handed to the API client")
}

func TestInitializeExpiredTokenClearedLocally(t *testing.T) {
	api := &fakeAuthAPI{currentErr: errors.New("should not be called")}
	store := &MemStore{Token: signedToken(t, time.Now().Add(-time.Hour))}
	m := NewManager(api, store, logging.Nop{})

	m.Initialize(context.Background())

	assert.False(t, m.LoggedIn())
	assert.ErrorIs(t, m.InitErr(), ErrTokenExpired)
	assert.Empty(t, store.Token, "expired token removed without a server call")
	assert.Empty(t, api.token)
}

func TestInitializeRejectedToken(t *testing.T) {
	api := &fakeAuthAPI{currentErr: errors.New("unauthorized")}
	store := &MemStore{Token: signedToken(t, time.Now().Add(time.Hour))}
	m := NewManager(api, store, logging.Nop{})

	m.Initialize(context.Background())

	assert.False(t, m.LoggedIn())
	assert.Error(t, m.InitErr())
	assert.Empty(t, store.Token)
	assert.Empty(t, api.token)
}

func TestInitializeEmptyStore(t *testing.T) {
	m := NewManager(&fakeAuthAPI{}, &MemStore{}, logging.Nop{})
	m.Initialize(context.Background())
	assert.False(t, m.LoggedIn())
	assert.NoError(t, m.InitErr())
}

func TestInitializeUndecodableTokenGoesToServer(t *testing.T) {
	api := &fakeAuthAPI{currentUser: models.User{Username: "alice"}}
	store := &MemStore{Token: "not-a-jwt"}
	m := NewManager(api, store, logging.Nop{})

	m.Initialize(context.Background())

	assert.True(t, m.LoggedIn(), "opaque tokens are for the server to judge")
}

func TestLogin(t *testing.T) {
	api := &fakeAuthAPI{loginToken: "tok", currentUser: models.User{Username: "alice"}}
	store := &MemStore{}
	m := NewManager(api, store, logging.Nop{})

	u, err := m.Login(context.Background(), "alice", "pw")

	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "tok", store.Token)
	assert.True(t, m.LoggedIn())
}

func TestLoginFailureLeavesState(t *testing.T) {
	api := &fakeAuthAPI{loginErr: errors.New("bad credentials")}
	store := &MemStore{Token: "previous"}
	m := NewManager(api, store, logging.Nop{})

	_, err := m.Login(context.Background(), "alice", "wrong")

	assert.Error(t, err)
	assert.False(t, m.LoggedIn())
	assert.Equal(t, "previous", store.Token, "store untouched on failure")
}

func TestLoginUserFetchFailure(t *testing.T) {
	api := &fakeAuthAPI{loginToken: "tok", currentErr: errors.New("boom")}
	store := &MemStore{}
	m := NewManager(api, store, logging.Nop{})

	_, err := m.Login(context.Background(), "alice", "pw")

	assert.Error(t, err)
	assert.False(t, m.LoggedIn())
	assert.Empty(t, api.token, "half-established credential rolled back")
}

func TestRegister(t *testing.T) {
	api := &fakeAuthAPI{regToken: "tok", regUser: models.User{Username: "bob"}}
	store := &MemStore{}
	m := NewManager(api, store, logging.Nop{})

	u, err := m.Register(context.Background(), "bob", "bob@example.edu", "pw")

	require.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.Equal(t, "tok", store.Token)
	assert.True(t, m.LoggedIn())
}

func TestLogout(t *testing.T) {
	api := &fakeAuthAPI{loginToken: "tok", currentUser: models.User{Username: "alice"}}
	store := &MemStore{}
	m := NewManager(api, store, logging.Nop{})
	_, err := m.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)

	m.Logout(context.Background())

	assert.False(t, m.LoggedIn())
	assert.Nil(t, m.CurrentUser())
	assert.Empty(t, store.Token)
	assert.Empty(t, api.token)
}

func TestBoltStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.db")
	s, err := OpenBoltStore(path)
	require.NoError(t, err)
	defer s.Close()

	token, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, s.Save("tok"))
	token, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	require.NoError(t, s.Clear())
	token, err = s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}
