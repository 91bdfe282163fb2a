package services

import (
	"context"
	"log"
	"strings"
	"time"

	"academy/models"
	"academy/remote"
	"academy/store"
	"academy/utils"
)

// CourseService syncs the course collection between the local cache and the
// remote backend.
type CourseService struct {
	cache   store.Store
	backend remote.Backend
	logger  *log.Logger
}

func NewCourseService(cache store.Store, backend remote.Backend, logger *log.Logger) *CourseService {
	return &CourseService{cache: cache, backend: backend, logger: logger}
}

// FetchAll reads the remote collection under a bounded wait. On success the
// result replaces the cache wholesale; on failure the cache is served
// as-is. A remote that answers with zero rows while the cache holds data
// triggers the discrepancy upload: the cached records are pushed back up
// and returned as the source of truth.
func (s *CourseService) FetchAll(ctx context.Context) []models.Course {
	var fetched []models.Course
	err := callRemote(ctx, courseTimeout, func(ctx context.Context) error {
		var err error
		fetched, err = s.backend.ListCourses(ctx)
		return err
	})
	if err != nil {
		if swallowed(err) {
			s.logger.Printf("course fetch failed, serving cache: %v", err)
		}
		cached, _ := store.GetJSON[[]models.Course](s.cache, store.KeyCourses)
		return cached
	}

	if len(fetched) == 0 {
		if cached, ok := store.GetJSON[[]models.Course](s.cache, store.KeyCourses); ok && len(cached) > 0 {
			// Ambiguous: an empty remote either lost data or was wiped on
			// purpose. We side with the cache and re-upload.
			s.logger.Printf("remote course collection empty, re-uploading %d cached courses", len(cached))
			s.uploadCached(ctx, cached)
			return cached
		}
	}

	if err := store.SetJSON(s.cache, store.KeyCourses, fetched); err != nil {
		s.logger.Printf("course cache refresh failed: %v", err)
	}
	return fetched
}

func (s *CourseService) uploadCached(ctx context.Context, cached []models.Course) {
	for _, course := range cached {
		course := course
		if err := callRemote(ctx, courseTimeout, func(ctx context.Context) error {
			return s.backend.UpsertCourse(ctx, course)
		}); swallowed(err) {
			s.logger.Printf("discrepancy upload of course %s failed: %v", course.ID, err)
		}
	}
}

// Get returns one course from the synced collection.
func (s *CourseService) Get(ctx context.Context, id string) (models.Course, error) {
	for _, course := range s.FetchAll(ctx) {
		if course.ID == id {
			return course, nil
		}
	}
	return models.Course{}, ErrNotFound
}

// Save writes the course to the cache first; that write must succeed. The
// remote upsert is attempted afterwards and a failure there is logged, not
// surfaced, since the save contract is already satisfied locally.
func (s *CourseService) Save(ctx context.Context, course models.Course) (models.Course, error) {
	if strings.TrimSpace(course.Title) == "" {
		return models.Course{}, ErrTitleRequired
	}

	if utils.IsTempID(course.ID) {
		course.ID = utils.NewEntityID("course")
	}
	now := time.Now().UTC()
	if course.CreatedAt.IsZero() {
		course.CreatedAt = now
	}
	course.UpdatedAt = now
	course.Published = true

	cached, _ := store.GetJSON[[]models.Course](s.cache, store.KeyCourses)
	cached = upsertByID(cached, course, func(c models.Course) string { return c.ID })
	if err := store.SetJSON(s.cache, store.KeyCourses, cached); err != nil {
		return models.Course{}, err
	}

	if err := callRemote(ctx, courseTimeout, func(ctx context.Context) error {
		return s.backend.UpsertCourse(ctx, course)
	}); swallowed(err) {
		s.logger.Printf("course %s saved locally, remote upsert failed: %v", course.ID, err)
	}
	return course, nil
}

// Remove deletes locally and then best-effort remotely.
func (s *CourseService) Remove(ctx context.Context, id string) error {
	cached, _ := store.GetJSON[[]models.Course](s.cache, store.KeyCourses)
	cached = removeByID(cached, id, func(c models.Course) string { return c.ID })
	if err := store.SetJSON(s.cache, store.KeyCourses, cached); err != nil {
		return err
	}

	if err := callRemote(ctx, courseTimeout, func(ctx context.Context) error {
		return s.backend.DeleteCourse(ctx, id)
	}); swallowed(err) {
		s.logger.Printf("course %s removed locally, remote delete failed: %v", id, err)
	}
	return nil
}
