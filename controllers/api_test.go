package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy/config"
	"academy/remote"
	"academy/routes"
	"academy/services"
	"academy/store"
)

// newTestApp wires the full HTTP surface against a memory store and the
// null backend, the same shape as a cache-only deployment.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		AdminEmail:    "admin@test.local",
		AdminPassword: "admin-pass",
	}
	svcs := services.NewContainer(store.NewMemoryStore(0), remote.NewNull(), cfg, log.New(io.Discard, "", 0))
	svcs.Auth.EnsureDefaultAdmin(context.Background())

	app := fiber.New()
	routes.SetupRoutes(app, svcs, cfg)
	return app
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	if resp.StatusCode != fiber.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	}
	return resp, env
}

func register(t *testing.T, app *fiber.App, name, email, password string) string {
	t.Helper()
	resp, env := doJSON(t, app, "POST", "/api/auth/register", "", fiber.Map{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return tokenFrom(t, env)
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp, env := doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"email": email, "password": password,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return tokenFrom(t, env)
}

func tokenFrom(t *testing.T, env envelope) string {
	t.Helper()
	var payload struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	require.NotEmpty(t, payload.Token)
	return payload.Token
}

func TestRegisterLoginMe(t *testing.T) {
	app := newTestApp(t)

	resp, env := doJSON(t, app, "POST", "/api/auth/register", "", fiber.Map{
		"name": "Ada", "email": "ada@test.local", "password": "hunter22",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, env.Success)
	assert.NotContains(t, string(env.Data), "passwordHash")

	token := login(t, app, "ada@test.local", "hunter22")

	resp, env = doJSON(t, app, "GET", "/api/auth/me", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var me struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "ada@test.local", me.Email)
	assert.Equal(t, "STUDENT", me.Role)
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/api/auth/register", "", fiber.Map{
		"name": "Ada", "email": "not-an-email", "password": "hunter22",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/api/auth/register", "", fiber.Map{
		"name": "Ada", "email": "ada@test.local", "password": "short",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := newTestApp(t)

	register(t, app, "Ada", "ada@test.local", "hunter22")
	resp, _ := doJSON(t, app, "POST", "/api/auth/register", "", fiber.Map{
		"name": "Imposter", "email": "ada@test.local", "password": "hunter23",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestLoginBadCredentials(t *testing.T) {
	app := newTestApp(t)

	register(t, app, "Ada", "ada@test.local", "hunter22")
	resp, _ := doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"email": "ada@test.local", "password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCoursesRequireSession(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "GET", "/api/courses", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCourseAuthoringRoles(t *testing.T) {
	app := newTestApp(t)
	studentToken := register(t, app, "Ada", "ada@test.local", "hunter22")
	adminToken := login(t, app, "admin@test.local", "admin-pass")

	// Students cannot author courses.
	resp, _ := doJSON(t, app, "POST", "/api/courses", studentToken, fiber.Map{
		"id": "temp-1", "title": "Not Allowed",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// An admin create promotes the builder's temporary id.
	resp, env := doJSON(t, app, "POST", "/api/courses", adminToken, fiber.Map{
		"id": "temp-1", "title": "Go Basics",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var course struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &course))
	assert.Regexp(t, `^course-\d+-[a-z0-9]{9}$`, course.ID)

	// Everyone with a session can read it back.
	resp, env = doJSON(t, app, "GET", "/api/courses/"+course.ID, studentToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &course))
	assert.Equal(t, "Go Basics", course.Title)
}

func TestCourseCreateWithoutTitle(t *testing.T) {
	app := newTestApp(t)
	adminToken := login(t, app, "admin@test.local", "admin-pass")

	resp, _ := doJSON(t, app, "POST", "/api/courses", adminToken, fiber.Map{"id": "temp-1"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCommentModerationFlow(t *testing.T) {
	app := newTestApp(t)
	studentToken := register(t, app, "Ada", "ada@test.local", "hunter22")
	otherToken := register(t, app, "Bob", "bob@test.local", "hunter22")
	adminToken := login(t, app, "admin@test.local", "admin-pass")

	resp, env := doJSON(t, app, "POST", "/api/lessons/lesson-1/comments", studentToken, fiber.Map{
		"text": "great lesson",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var comment struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &comment))
	assert.Equal(t, "pending", comment.Status)

	// Invisible to other students while pending.
	resp, env = doJSON(t, app, "GET", "/api/lessons/lesson-1/comments", otherToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", string(env.Data))

	// Students cannot reach the moderation queue.
	resp, _ = doJSON(t, app, "GET", "/api/comments", studentToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Approval makes the comment visible to everyone.
	resp, _ = doJSON(t, app, "PUT", "/api/comments/"+comment.ID+"/status", adminToken, fiber.Map{
		"lessonId": "lesson-1", "status": "approved",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, env = doJSON(t, app, "GET", "/api/lessons/lesson-1/comments", otherToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var visible []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &visible))
	require.Len(t, visible, 1)
	assert.Equal(t, comment.ID, visible[0].ID)

	// A second approval of the same comment conflicts.
	resp, _ = doJSON(t, app, "PUT", "/api/comments/"+comment.ID+"/status", adminToken, fiber.Map{
		"lessonId": "lesson-1", "status": "approved",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestThemeAndLayoutArePublic(t *testing.T) {
	app := newTestApp(t)

	resp, env := doJSON(t, app, "GET", "/api/theme", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var theme struct {
		SiteName string `json:"siteName"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &theme))
	assert.Equal(t, "Academy", theme.SiteName)

	resp, env = doJSON(t, app, "GET", "/api/layout", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var blocks []struct {
		Type string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &blocks))
	require.Len(t, blocks, 1)
	assert.Equal(t, "hero_banner", blocks[0].Type)
}

func TestThemeUpdateRequiresAdmin(t *testing.T) {
	app := newTestApp(t)
	studentToken := register(t, app, "Ada", "ada@test.local", "hunter22")
	adminToken := login(t, app, "admin@test.local", "admin-pass")

	body := fiber.Map{
		"primaryColor": "#123456", "secondaryColor": "#654321",
		"logoUrl": "", "siteName": "Night School",
	}
	resp, _ := doJSON(t, app, "PUT", "/api/theme", studentToken, body)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, "PUT", "/api/theme", adminToken, body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, env := doJSON(t, app, "GET", "/api/theme", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var theme struct {
		SiteName string `json:"siteName"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &theme))
	assert.Equal(t, "Night School", theme.SiteName)
}

func TestProgressIsOwnerScoped(t *testing.T) {
	app := newTestApp(t)
	adaToken := register(t, app, "Ada", "ada@test.local", "hunter22")
	bobToken := register(t, app, "Bob", "bob@test.local", "hunter22")

	resp, _ := doJSON(t, app, "POST", "/api/progress/lesson-1", adaToken, fiber.Map{"completed": true})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, env := doJSON(t, app, "GET", "/api/progress", adaToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var progress map[string]bool
	require.NoError(t, json.Unmarshal(env.Data, &progress))
	assert.True(t, progress["lesson-1"])

	resp, env = doJSON(t, app, "GET", "/api/progress", bobToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	progress = nil
	require.NoError(t, json.Unmarshal(env.Data, &progress))
	assert.Empty(t, progress)
}

func TestUserAdminSurface(t *testing.T) {
	app := newTestApp(t)
	studentToken := register(t, app, "Ada", "ada@test.local", "hunter22")
	adminToken := login(t, app, "admin@test.local", "admin-pass")

	resp, _ := doJSON(t, app, "GET", "/api/users", studentToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, env := doJSON(t, app, "GET", "/api/users", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var users []struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &users))
	assert.Len(t, users, 2)
	assert.NotContains(t, string(env.Data), "passwordHash")
}

func TestWebhookAdminCRUD(t *testing.T) {
	app := newTestApp(t)
	adminToken := login(t, app, "admin@test.local", "admin-pass")

	resp, _ := doJSON(t, app, "POST", "/api/webhooks", adminToken, fiber.Map{
		"name": "bad", "targetUrl": "not a url", "eventType": "course.updated",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, env := doJSON(t, app, "POST", "/api/webhooks", adminToken, fiber.Map{
		"name": "course updates", "targetUrl": "https://hooks.test.local/x",
		"eventType": "course.updated", "active": true,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var sub struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sub))
	require.NotEmpty(t, sub.ID)

	resp, _ = doJSON(t, app, "DELETE", "/api/webhooks/"+sub.ID, adminToken, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
