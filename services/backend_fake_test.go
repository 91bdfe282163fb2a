package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"academy/models"
)

var errRemoteDown = errors.New("remote down")

// fakeBackend is an in-memory remote.Backend with a failure switch, so
// tests can flip between a reachable and an unreachable remote tier.
type fakeBackend struct {
	mu       sync.Mutex
	failing  bool
	courses  map[string]models.Course
	profiles map[string]models.Profile
	settings *models.Settings
	blocks   []models.PageBlock
	comments map[string]models.Comment
	progress map[string]models.ProgressRecord
	webhooks map[string]models.WebhookSubscription

	courseUpserts []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		courses:  map[string]models.Course{},
		profiles: map[string]models.Profile{},
		comments: map[string]models.Comment{},
		progress: map[string]models.ProgressRecord{},
		webhooks: map[string]models.WebhookSubscription{},
	}
}

func (f *fakeBackend) setFailing(failing bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing = failing
}

func (f *fakeBackend) check() error {
	if f.failing {
		return errRemoteDown
	}
	return nil
}

func (f *fakeBackend) ListCourses(context.Context) ([]models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(); err != nil {
		return nil, err
	}
	out := make([]models.Course, 0, len(f.courses))
	for _, c := range f.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeBackend) UpsertCourse(_ context.Context, course models.Course) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(); err != nil {
		return err
	}
	f.courses[course.ID] = course
	f.courseUpserts = append(f.courseUpserts, course.ID)
	return nil
}

func (f *fakeBackend) DeleteCourse(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(); err != nil {
		return err
	}
	delete(f.courses, id)
	return nil
}

func (f *fakeBackend) ListProfiles(context.Context) ([]models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(); err != nil {
		return nil, err
	}
	out := make([]models.Profile, 0, len(f.profiles))
	for _, p := range f.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeBackend) UpsertProfile(_ context.Context, profile models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(); err != nil {
		return err
	}
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeBackend) DeleteProfile(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(); err != nil {
		return err
	}
	delete(f.profiles, id)
	return nil
}

func (f *fakeBackend) GetSettings(context.Context) (models.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(); err != nil {
		return models.Settings{}, err
	}
	if f.settings == nil {
		return models.Settings{}, errRemoteDown
	}
	return *f.settings, nil
}

func (f *fakeBackend) SaveSettings(_ context.Context, settings models.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(); err != nil {
		return err
	}
	f.settings = &settings
	return nil
}

func (f *fakeBackend) ListBlocks(context.Context) ([]models.PageBlock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(); err != nil {
		return nil, err
	}
	return append([]models.PageBlock(nil), f.blocks...), nil
}

func (f *fakeBackend) ReplaceBlocks(_ context.Context, blocks []models.PageBlock) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(); err != nil {
		return err
	}
	f.blocks = append([]models.PageBlock(nil), blocks...)
	return nil
}

func (f *fakeBackend) ListComments(_ context.Context, lessonID string) ([]models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(); err != nil {
		return nil, err
	}
	var out []models.Comment
	for _, c := range f.comments {
		if c.LessonID == lessonID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (f *fakeBackend) ListAllComments(context.Context) ([]models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(); err != nil {
		return nil, err
	}
	out := make([]models.Comment, 0, len(f.comments))
	for _, c := range f.comments {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (f *fakeBackend) UpsertComment(_ context.Context, comment models.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(); err != nil {
		return err
	}
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeBackend) DeleteComment(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(); err != nil {
		return err
	}
	delete(f.comments, id)
	return nil
}

func (f *fakeBackend) ListProgress(_ context.Context, userID string) ([]models.ProgressRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(); err != nil {
		return nil, err
	}
	var out []models.ProgressRecord
	for _, r := range f.progress {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeBackend) UpsertProgress(_ context.Context, record models.ProgressRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(); err != nil {
		return err
	}
	f.progress[record.UserID+"/"+record.LessonID] = record
	return nil
}

func (f *fakeBackend) ListWebhooks(context.Context) ([]models.WebhookSubscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(); err != nil {
		return nil, err
	}
	out := make([]models.WebhookSubscription, 0, len(f.webhooks))
	for _, w := range f.webhooks {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeBackend) UpsertWebhook(_ context.Context, sub models.WebhookSubscription) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(); err != nil {
		return err
	}
	f.webhooks[sub.ID] = sub
	return nil
}

func (f *fakeBackend) DeleteWebhook(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.check(); err != nil {
		return err
	}
	delete(f.webhooks, id)
	return nil
}
