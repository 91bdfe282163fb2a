package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy/models"
	"academy/store"
)

func TestUserSaveAssignsIdentityID(t *testing.T) {
	svc := NewUserService(store.NewMemoryStore(0), newFakeBackend(), testLogger())

	profile, err := svc.Save(context.Background(), models.Profile{
		Name:  "Ada",
		Email: "ada@test.local",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, models.DefaultAvatar, profile.Avatar)
	assert.Equal(t, models.UserActive, profile.Status)
}

func TestUserFindByEmailCaseInsensitive(t *testing.T) {
	svc := NewUserService(store.NewMemoryStore(0), newFakeBackend(), testLogger())
	ctx := context.Background()

	saved, err := svc.Save(ctx, models.Profile{Name: "Ada", Email: "Ada@Test.Local"})
	require.NoError(t, err)

	found, err := svc.FindByEmail(ctx, "  ada@test.local ")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)

	_, err = svc.FindByEmail(ctx, "nobody@test.local")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserFindByIDPrefersCache(t *testing.T) {
	backend := newFakeBackend()
	svc := NewUserService(store.NewMemoryStore(0), backend, testLogger())
	ctx := context.Background()

	saved, err := svc.Save(ctx, models.Profile{Name: "Ada", Email: "ada@test.local"})
	require.NoError(t, err)

	backend.setFailing(true)
	found, err := svc.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", found.Name)
}

func TestUserRemove(t *testing.T) {
	backend := newFakeBackend()
	svc := NewUserService(store.NewMemoryStore(0), backend, testLogger())
	ctx := context.Background()

	saved, err := svc.Save(ctx, models.Profile{Name: "Ada", Email: "ada@test.local"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, saved.ID))
	assert.Empty(t, svc.FetchAll(ctx))
	assert.Empty(t, backend.profiles)
}
