// Package remote wraps the hosted relational backend. Every call is
// fallible and latent; callers bound it with a context deadline and decide
// per operation whether a failure matters.
package remote

import (
	"context"
	"errors"

	"academy/models"
)

// ErrNotConfigured is returned by the null backend. Services treat it as a
// deliberate cache-only deployment, not as a transport failure.
var ErrNotConfigured = errors.New("remote backend not configured")

// Backend is the row-level CRUD surface the sync services consume. It is
// injected at construction; there is no package-level client.
type Backend interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	UpsertCourse(ctx context.Context, course models.Course) error
	DeleteCourse(ctx context.Context, id string) error

	ListProfiles(ctx context.Context) ([]models.Profile, error)
	UpsertProfile(ctx context.Context, profile models.Profile) error
	DeleteProfile(ctx context.Context, id string) error

	GetSettings(ctx context.Context) (models.Settings, error)
	SaveSettings(ctx context.Context, settings models.Settings) error

	ListBlocks(ctx context.Context) ([]models.PageBlock, error)
	ReplaceBlocks(ctx context.Context, blocks []models.PageBlock) error

	ListComments(ctx context.Context, lessonID string) ([]models.Comment, error)
	ListAllComments(ctx context.Context) ([]models.Comment, error)
	UpsertComment(ctx context.Context, comment models.Comment) error
	DeleteComment(ctx context.Context, id string) error

	ListProgress(ctx context.Context, userID string) ([]models.ProgressRecord, error)
	UpsertProgress(ctx context.Context, record models.ProgressRecord) error

	ListWebhooks(ctx context.Context) ([]models.WebhookSubscription, error)
	UpsertWebhook(ctx context.Context, sub models.WebhookSubscription) error
	DeleteWebhook(ctx context.Context, id string) error
}

// Null is the no-op backend used when no database is configured. The
// services then serve everything from the local cache.
type Null struct{}

func NewNull() Null { return Null{} }

func (Null) ListCourses(context.Context) ([]models.Course, error)    { return nil, ErrNotConfigured }
func (Null) UpsertCourse(context.Context, models.Course) error       { return ErrNotConfigured }
func (Null) DeleteCourse(context.Context, string) error              { return ErrNotConfigured }
func (Null) ListProfiles(context.Context) ([]models.Profile, error)  { return nil, ErrNotConfigured }
func (Null) UpsertProfile(context.Context, models.Profile) error     { return ErrNotConfigured }
func (Null) DeleteProfile(context.Context, string) error             { return ErrNotConfigured }
func (Null) GetSettings(context.Context) (models.Settings, error)    { return models.Settings{}, ErrNotConfigured }
func (Null) SaveSettings(context.Context, models.Settings) error     { return ErrNotConfigured }
func (Null) ListBlocks(context.Context) ([]models.PageBlock, error)  { return nil, ErrNotConfigured }
func (Null) ReplaceBlocks(context.Context, []models.PageBlock) error { return ErrNotConfigured }
func (Null) ListComments(context.Context, string) ([]models.Comment, error) {
	return nil, ErrNotConfigured
}
func (Null) ListAllComments(context.Context) ([]models.Comment, error) { return nil, ErrNotConfigured }
func (Null) UpsertComment(context.Context, models.Comment) error       { return ErrNotConfigured }
func (Null) DeleteComment(context.Context, string) error               { return ErrNotConfigured }
func (Null) ListProgress(context.Context, string) ([]models.ProgressRecord, error) {
	return nil, ErrNotConfigured
}
func (Null) UpsertProgress(context.Context, models.ProgressRecord) error { return ErrNotConfigured }
func (Null) ListWebhooks(context.Context) ([]models.WebhookSubscription, error) {
	return nil, ErrNotConfigured
}
func (Null) UpsertWebhook(context.Context, models.WebhookSubscription) error { return ErrNotConfigured }
func (Null) DeleteWebhook(context.Context, string) error                     { return ErrNotConfigured }
