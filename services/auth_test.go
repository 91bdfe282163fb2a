package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy/config"
	"academy/models"
	"academy/store"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		AdminEmail:    "admin@test.local",
		AdminPassword: "admin-pass",
	}
}

func newAuthFixture() (*AuthService, *UserService, *fakeBackend) {
	backend := newFakeBackend()
	users := NewUserService(store.NewMemoryStore(0), backend, testLogger())
	return NewAuthService(users, testConfig(), testLogger()), users, backend
}

func TestSignUpCreatesStudentProfile(t *testing.T) {
	auth, _, backend := newAuthFixture()

	profile, token, err := auth.SignUp(context.Background(), "Ada", "ada@test.local", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, models.RoleStudent, profile.Role)
	assert.Equal(t, models.UserActive, profile.Status)
	assert.Equal(t, models.DefaultAvatar, profile.Avatar)
	assert.NotEqual(t, "hunter22", profile.PasswordHash)

	remote, ok := backend.profiles[profile.ID]
	require.True(t, ok)
	assert.Equal(t, "ada@test.local", remote.Email)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	auth, _, _ := newAuthFixture()
	ctx := context.Background()

	_, _, err := auth.SignUp(ctx, "Ada", "ada@test.local", "hunter22")
	require.NoError(t, err)

	_, _, err = auth.SignUp(ctx, "Imposter", "Ada@Test.Local", "hunter23")
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestSignInRoundTrip(t *testing.T) {
	auth, _, _ := newAuthFixture()
	ctx := context.Background()

	created, _, err := auth.SignUp(ctx, "Ada", "ada@test.local", "hunter22")
	require.NoError(t, err)

	profile, token, err := auth.SignIn(ctx, "ada@test.local", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, created.ID, profile.ID)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	auth, _, _ := newAuthFixture()
	ctx := context.Background()

	_, _, err := auth.SignUp(ctx, "Ada", "ada@test.local", "hunter22")
	require.NoError(t, err)

	_, _, err = auth.SignIn(ctx, "ada@test.local", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = auth.SignIn(ctx, "nobody@test.local", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInRejectsInactiveAccount(t *testing.T) {
	auth, users, _ := newAuthFixture()
	ctx := context.Background()

	profile, _, err := auth.SignUp(ctx, "Ada", "ada@test.local", "hunter22")
	require.NoError(t, err)

	profile.Status = models.UserInactive
	_, err = users.Save(ctx, profile)
	require.NoError(t, err)

	_, _, err = auth.SignIn(ctx, "ada@test.local", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInWorksWhileRemoteDown(t *testing.T) {
	auth, _, backend := newAuthFixture()
	ctx := context.Background()

	_, _, err := auth.SignUp(ctx, "Ada", "ada@test.local", "hunter22")
	require.NoError(t, err)

	// Credentials verify against the cached profile collection.
	backend.setFailing(true)
	_, token, err := auth.SignIn(ctx, "ada@test.local", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestCreateUserWithRole(t *testing.T) {
	auth, _, _ := newAuthFixture()
	ctx := context.Background()

	profile, _, err := auth.CreateUser(ctx, "Mo", "mo@test.local", "hunter22", models.RoleModerator)
	require.NoError(t, err)
	assert.Equal(t, models.RoleModerator, profile.Role)

	// Unknown roles fall back to student instead of escaping the enum.
	profile, _, err = auth.CreateUser(ctx, "Eve", "eve@test.local", "hunter22", models.Role("SUPERUSER"))
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, profile.Role)
}

func TestCurrentUserPlaceholder(t *testing.T) {
	auth, _, _ := newAuthFixture()

	profile := auth.CurrentUser(context.Background(), "ghost-id-123", models.RoleStudent)
	assert.Equal(t, "ghost-id-123", profile.ID)
	assert.Equal(t, "User", profile.Name)
	assert.Equal(t, models.RoleStudent, profile.Role)
}

func TestEnsureDefaultAdmin(t *testing.T) {
	auth, users, _ := newAuthFixture()
	ctx := context.Background()

	auth.EnsureDefaultAdmin(ctx)
	admin, err := users.FindByEmail(ctx, "admin@test.local")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	// Idempotent across restarts.
	auth.EnsureDefaultAdmin(ctx)
	assert.Len(t, users.FetchAll(ctx), 1)
}
