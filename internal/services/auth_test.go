package services

import (
	"context"
	"testing"
	"time"

	evbus "github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/birthdaybook/internal/common"
	"github.com/dmitrijs2005/birthdaybook/internal/events"
	"github.com/dmitrijs2005/birthdaybook/internal/repositories/kv"
)

func newTestAuth(t *testing.T) (AuthService, kv.Repository, evbus.Bus) {
	t.Helper()
	repo := kv.NewMemoryRepository()
	bus := evbus.New()
	return NewAuthService(repo, bus, []byte("test-secret"), time.Hour), repo, bus
}

func TestRegister_CreatesUserAndOpensSession(t *testing.T) {
	a, repo, bus := newTestAuth(t)
	ctx := context.Background()

	var sessions []string
	require.NoError(t, bus.Subscribe(events.TopicSessionChanged, func(id string) {
		sessions = append(sessions, id)
	}))

	u, err := a.Register(ctx, "Ana", "ana@example.com", []byte("s3cret"))
	require.NoError(t, err)
	require.NotEmpty(t, u.Id)
	assert.Equal(t, "Ana", u.Name)
	assert.NotEqual(t, "s3cret", u.PasswordHash)

	require.Len(t, sessions, 1)
	assert.Equal(t, u.Id, sessions[0])

	token, err := repo.Get(ctx, "session")
	require.NoError(t, err)
	require.NotNil(t, token)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	a, _, _ := newTestAuth(t)
	ctx := context.Background()

	_, err := a.Register(ctx, "Ana", "ana@example.com", []byte("pw"))
	require.NoError(t, err)

	_, err = a.Register(ctx, "Other", "ANA@example.com", []byte("pw2"))
	require.ErrorIs(t, err, common.ErrorUserAlreadyExists)
}

func TestLogin_OKAndWrongPassword(t *testing.T) {
	a, _, _ := newTestAuth(t)
	ctx := context.Background()

	reg, err := a.Register(ctx, "Ana", "ana@example.com", []byte("pw"))
	require.NoError(t, err)

	u, err := a.Login(ctx, "ana@example.com", []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, reg.Id, u.Id)

	_, err = a.Login(ctx, "ana@example.com", []byte("wrong"))
	require.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = a.Login(ctx, "nobody@example.com", []byte("pw"))
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestRestoreSession_ResumesPersistedLogin(t *testing.T) {
	repo := kv.NewMemoryRepository()
	ctx := context.Background()

	first := NewAuthService(repo, nil, []byte("test-secret"), time.Hour)
	reg, err := first.Register(ctx, "Ana", "ana@example.com", []byte("pw"))
	require.NoError(t, err)

	// Simulated restart: a fresh service over the same repository.
	bus := evbus.New()
	var restored string
	require.NoError(t, bus.Subscribe(events.TopicSessionChanged, func(id string) { restored = id }))

	second := NewAuthService(repo, bus, []byte("test-secret"), time.Hour)
	u, err := second.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, reg.Id, u.Id)
	assert.Equal(t, reg.Id, restored)
}

func TestRestoreSession_NoToken(t *testing.T) {
	a, _, _ := newTestAuth(t)
	_, err := a.RestoreSession(context.Background())
	require.ErrorIs(t, err, common.ErrorNoSession)
}

func TestRestoreSession_ExpiredToken(t *testing.T) {
	repo := kv.NewMemoryRepository()
	ctx := context.Background()

	short := NewAuthService(repo, nil, []byte("test-secret"), -time.Second)
	_, err := short.Register(ctx, "Ana", "ana@example.com", []byte("pw"))
	require.NoError(t, err)

	_, err = short.RestoreSession(ctx)
	require.ErrorIs(t, err, common.ErrorNoSession)
}

func TestLogout_DropsSessionAndPublishesEmptyId(t *testing.T) {
	a, repo, bus := newTestAuth(t)
	ctx := context.Background()

	_, err := a.Register(ctx, "Ana", "ana@example.com", []byte("pw"))
	require.NoError(t, err)

	var last string
	require.NoError(t, bus.Subscribe(events.TopicSessionChanged, func(id string) { last = id }))

	require.NoError(t, a.Logout(ctx))
	assert.Empty(t, last)

	token, err := repo.Get(ctx, "session")
	require.NoError(t, err)
	require.Nil(t, token)
}
