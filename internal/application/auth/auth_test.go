package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timecard-app/timecard/internal/domain"
	domerrors "github.com/timecard-app/timecard/internal/domain/errors"
	"github.com/timecard-app/timecard/internal/infrastructure/persistence/memory"
)

func seedUser(t *testing.T, store *memory.Store, email string, roles ...domain.Role) *domain.User {
	t.Helper()
	user := &domain.User{ID: domain.NewUserID(uuid.New()), Email: email, Roles: roles}
	require.NoError(t, store.Users().Create(context.Background(), user))
	return user
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	user := seedUser(t, store, "manager@example.com", domain.RoleAccount, domain.RoleOfficeManager)
	uc := NewLogin(store.Users(), store.Sessions(), time.Hour)

	got, err := uc.Execute(ctx, "  Manager@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.Session.UserID)
	// Default active role follows the fixed priority order.
	assert.Equal(t, domain.RoleOfficeManager, got.Session.ActiveRole)
	assert.True(t, got.Session.ExpiresAt.After(time.Now()))

	_, err = uc.Execute(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domerrors.ErrUserNotFound)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedUser(t, store, "worker@example.com", domain.RoleAccount)

	login := NewLogin(store.Users(), store.Sessions(), time.Hour)
	res, err := login.Execute(ctx, "worker@example.com")
	require.NoError(t, err)

	require.NoError(t, NewLogout(store.Sessions()).Execute(ctx, res.Session.ID))
	got, err := store.Sessions().GetByID(ctx, res.Session.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSwitchRole(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedUser(t, store, "admin@example.com", domain.RoleAccount, domain.RoleAdmin)

	login := NewLogin(store.Users(), store.Sessions(), time.Hour)
	res, err := login.Execute(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, res.Session.ActiveRole)

	uc := NewSwitchRole(store.Sessions(), store.Users())
	require.NoError(t, uc.Execute(ctx, SwitchRoleInput{SessionID: res.Session.ID, Role: domain.RoleAccount}))

	session, err := store.Sessions().GetByID(ctx, res.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAccount, session.ActiveRole)

	err = uc.Execute(ctx, SwitchRoleInput{SessionID: res.Session.ID, Role: domain.RoleOfficeManager})
	assert.ErrorIs(t, err, domerrors.ErrRoleNotHeld)

	err = uc.Execute(ctx, SwitchRoleInput{SessionID: domain.NewSessionID(uuid.New()), Role: domain.RoleAccount})
	assert.ErrorIs(t, err, domerrors.ErrSessionNotFound)
}

func TestSweepExpiredSessions(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	user := seedUser(t, store, "worker@example.com", domain.RoleAccount)

	expired := &domain.Session{
		ID:        domain.NewSessionID(uuid.New()),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	live := &domain.Session{
		ID:        domain.NewSessionID(uuid.New()),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Sessions().Create(ctx, expired))
	require.NoError(t, store.Sessions().Create(ctx, live))

	n, err := SweepExpiredSessions(ctx, store.Sessions())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	gone, err := store.Sessions().GetByID(ctx, expired.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
	kept, err := store.Sessions().GetByID(ctx, live.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept)
}
