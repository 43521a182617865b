package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peersphere/peersphere/internal/client/client"
	"github.com/peersphere/peersphere/internal/client/client/apitest"
	"github.com/peersphere/peersphere/internal/client/models"
	"github.com/peersphere/peersphere/internal/client/repositories/metadata"
	"github.com/peersphere/peersphere/internal/client/session"
	"github.com/peersphere/peersphere/internal/common"
)

// ---- fake client ----

type fakeAuthAPI struct {
	HealthRet string
	HealthErr error

	LoginRet *models.User
	LoginErr error

	RegisterRet *models.User
	RegisterErr error

	Calls int

	LastEmail    string
	LastPassword string
	LastName     string
}

func (f *fakeAuthAPI) Health(context.Context) (string, error) {
	f.Calls++
	return f.HealthRet, f.HealthErr
}

func (f *fakeAuthAPI) Login(_ context.Context, email, password string) (*models.User, error) {
	f.Calls++
	f.LastEmail, f.LastPassword = email, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeAuthAPI) Register(_ context.Context, name, email, password string) (*models.User, error) {
	f.Calls++
	f.LastName, f.LastEmail, f.LastPassword = name, email, password
	return f.RegisterRet, f.RegisterErr
}

func newStore() *session.Store {
	return session.NewStore(metadata.NewMemoryRepository(), metadata.NewMemoryRepository(), nil)
}

// ---- unit tests ----

func TestLogin_SavesBackendIdentity(t *testing.T) {
	ctx := context.Background()
	api := &fakeAuthAPI{LoginRet: &models.User{UserID: 4, Name: "Ana", Email: "ana@x.com"}}
	store := newStore()
	svc := NewAuthService(api, store, nil)

	u, err := svc.Login(ctx, "ana@x.com", []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, &models.User{UserID: 4, Name: "Ana", Email: "ana@x.com"}, u)
	assert.Equal(t, "pw", api.LastPassword)

	sess, ok := store.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, *u, sess.User())
	assert.False(t, sess.LoginTime.IsZero())
	assert.Equal(t, StateAuthenticated, svc.State(ctx))
}

func TestLogin_FailurePropagatesUnchanged(t *testing.T) {
	ctx := context.Background()
	apiErr := &client.APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"}
	svc := NewAuthService(&fakeAuthAPI{LoginErr: apiErr}, newStore(), nil)

	_, err := svc.Login(ctx, "ana@x.com", []byte("bad"))
	assert.Same(t, apiErr, err)
	assert.Equal(t, StateAnonymous, svc.State(ctx))
}

func TestLogin_FailureKeepsExistingSession(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	_, err := store.Save(ctx, models.User{UserID: 1, Name: "Old"})
	require.NoError(t, err)

	svc := NewAuthService(&fakeAuthAPI{LoginErr: client.ErrUnavailable}, store, nil)
	_, err = svc.Login(ctx, "ana@x.com", []byte("pw"))
	require.ErrorIs(t, err, client.ErrUnavailable)

	name, ok := store.UserName(ctx)
	require.True(t, ok)
	assert.Equal(t, "Old", name)
}

func TestLogin_ValidationBeforeNetwork(t *testing.T) {
	api := &fakeAuthAPI{}
	svc := NewAuthService(api, newStore(), nil)

	_, err := svc.Login(context.Background(), "not-an-email", nil)
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Zero(t, api.Calls)
}

func TestLogin_ResponseWithoutUserID(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(&fakeAuthAPI{LoginRet: &models.User{Name: "Ana"}}, newStore(), nil)

	_, err := svc.Login(ctx, "ana@x.com", []byte("pw"))
	require.ErrorIs(t, err, client.ErrMalformedResponse)
	assert.Equal(t, StateAnonymous, svc.State(ctx))
}

func TestRegister_UsesCallerNameAndEmail(t *testing.T) {
	ctx := context.Background()
	api := &fakeAuthAPI{RegisterRet: &models.User{UserID: 42, Name: "server", Email: "server@x.com"}}
	store := newStore()
	svc := NewAuthService(api, store, nil)

	u, err := svc.Register(ctx, "Ana", "ana@x.com", []byte("pw123456"))
	require.NoError(t, err)
	assert.Equal(t, &models.User{UserID: 42, Name: "Ana", Email: "ana@x.com"}, u)

	sess, ok := store.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, models.User{UserID: 42, Name: "Ana", Email: "ana@x.com"}, sess.User())
}

func TestRegister_ShortPassword(t *testing.T) {
	api := &fakeAuthAPI{}
	svc := NewAuthService(api, newStore(), nil)

	_, err := svc.Register(context.Background(), "Ana", "ana@x.com", []byte("pw"))
	assert.EqualError(t, err, "Password must be at least 6 characters")
	assert.Zero(t, api.Calls)
}

func TestLogout_AlwaysAnonymous(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	svc := NewAuthService(&fakeAuthAPI{}, store, nil)

	require.NoError(t, svc.Logout(ctx))
	assert.Equal(t, StateAnonymous, svc.State(ctx))

	_, err := store.Save(ctx, models.User{UserID: 1})
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))
	assert.False(t, store.IsAuthenticated(ctx))
}

func TestHealth_Proxies(t *testing.T) {
	boom := errors.New("boom")
	svc := NewAuthService(&fakeAuthAPI{HealthRet: "OK"}, newStore(), nil)
	got, err := svc.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "OK", got)

	svc = NewAuthService(&fakeAuthAPI{HealthErr: boom}, newStore(), nil)
	_, err = svc.Health(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestAuthState_String(t *testing.T) {
	assert.Equal(t, "anonymous", StateAnonymous.String())
	assert.Equal(t, "authenticated", StateAuthenticated.String())
}

// ---- against the fake backend ----

func TestAuthFlow_EndToEnd(t *testing.T) {
	ctx := context.Background()
	backend := apitest.New()
	srv := backend.Server(t)
	store := newStore()
	svc := NewAuthService(client.NewRESTClient(srv.URL+"/api"), store, nil)

	u, err := svc.Register(ctx, "Ana", "ana@x.com", []byte("pw123456"))
	require.NoError(t, err)
	assert.NotZero(t, u.UserID)

	sess, ok := store.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, models.User{UserID: u.UserID, Name: "Ana", Email: "ana@x.com"}, sess.User())

	require.NoError(t, svc.Logout(ctx))
	assert.Equal(t, StateAnonymous, svc.State(ctx))

	_, err = svc.Login(ctx, "ana@x.com", []byte("wrong-password"))
	assert.EqualError(t, err, "Invalid credentials")
	assert.Equal(t, StateAnonymous, svc.State(ctx))

	got, err := svc.Login(ctx, "ana@x.com", []byte("pw123456"))
	require.NoError(t, err)
	assert.Equal(t, u.UserID, got.UserID)

	id, _ := store.UserID(ctx)
	name, _ := store.UserName(ctx)
	email, _ := store.UserEmail(ctx)
	assert.Equal(t, got.UserID, id)
	assert.Equal(t, "Ana", name)
	assert.Equal(t, "ana@x.com", email)
}
