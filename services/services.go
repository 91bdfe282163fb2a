// Package services holds the entity sync services: one per entity family,
// each presenting CRUD over a two-tier storage reality. The local cache
// write is authoritative for saves; the remote backend is written
// best-effort under a bounded timeout and wins on reads.
package services

import (
	"context"
	"errors"
	"log"
	"time"

	"academy/config"
	"academy/remote"
	"academy/store"
)

var (
	ErrTitleRequired      = errors.New("course title is required")
	ErrTextRequired       = errors.New("comment text is required")
	ErrEmailExists        = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("record not found")
	ErrNotPending         = errors.New("comment is not pending moderation")
)

// Remote timeouts per entity family. A call that misses its deadline is
// cancelled, not left running.
const (
	courseTimeout   = 3 * time.Second
	profileTimeout  = 5 * time.Second
	settingsTimeout = 2 * time.Second
	layoutTimeout   = 5 * time.Second
	commentTimeout  = 3 * time.Second
	progressTimeout = 2 * time.Second
	webhookTimeout  = 3 * time.Second
)

func callRemote(ctx context.Context, timeout time.Duration, fn func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return fn(ctx)
}

// swallowed reports whether a remote error should merely be logged. The
// null backend is a deliberate cache-only deployment, not a failure.
func swallowed(err error) bool {
	return err != nil && !errors.Is(err, remote.ErrNotConfigured)
}

func upsertByID[T any](list []T, item T, id func(T) string) []T {
	for i := range list {
		if id(list[i]) == id(item) {
			list[i] = item
			return list
		}
	}
	return append(list, item)
}

func removeByID[T any](list []T, target string, id func(T) string) []T {
	out := list[:0]
	for _, item := range list {
		if id(item) != target {
			out = append(out, item)
		}
	}
	return out
}

// Container wires every service against one cache store and one backend.
type Container struct {
	Auth     *AuthService
	Courses  *CourseService
	Users    *UserService
	Comments *CommentService
	Layout   *LayoutService
	Settings *SettingsService
	Progress *ProgressService
	Webhooks *WebhookService
}

func NewContainer(cache store.Store, backend remote.Backend, cfg *config.Config, logger *log.Logger) *Container {
	users := NewUserService(cache, backend, logger)
	return &Container{
		Auth:     NewAuthService(users, cfg, logger),
		Courses:  NewCourseService(cache, backend, logger),
		Users:    users,
		Comments: NewCommentService(cache, backend, logger),
		Layout:   NewLayoutService(cache, backend, logger),
		Settings: NewSettingsService(cache, backend, logger),
		Progress: NewProgressService(cache, backend, logger),
		Webhooks: NewWebhookService(cache, backend, logger),
	}
}
