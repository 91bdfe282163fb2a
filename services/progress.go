package services

import (
	"context"
	"log"
	"time"

	"academy/models"
	"academy/remote"
	"academy/store"
)

// ProgressService syncs per-user lesson completion. Each user has their own
// cache partition; nothing is ever shared across users.
type ProgressService struct {
	cache   store.Store
	backend remote.Backend
	logger  *log.Logger
}

func NewProgressService(cache store.Store, backend remote.Backend, logger *log.Logger) *ProgressService {
	return &ProgressService{cache: cache, backend: backend, logger: logger}
}

// Get returns the user's lesson-id to completed mapping.
func (s *ProgressService) Get(ctx context.Context, userID string) map[string]bool {
	var records []models.ProgressRecord
	err := callRemote(ctx, progressTimeout, func(ctx context.Context) error {
		var err error
		records, err = s.backend.ListProgress(ctx, userID)
		return err
	})
	if err != nil {
		if swallowed(err) {
			s.logger.Printf("progress fetch for user %s failed, serving cache: %v", userID, err)
		}
		cached, _ := store.GetJSON[map[string]bool](s.cache, store.ProgressKey(userID))
		if cached == nil {
			cached = map[string]bool{}
		}
		return cached
	}

	progress := make(map[string]bool, len(records))
	for _, record := range records {
		progress[record.LessonID] = record.Completed
	}
	if err := store.SetJSON(s.cache, store.ProgressKey(userID), progress); err != nil {
		s.logger.Printf("progress cache refresh for user %s failed: %v", userID, err)
	}
	return progress
}

// Toggle records a completion flip local-first.
func (s *ProgressService) Toggle(ctx context.Context, userID, lessonID string, completed bool) error {
	cached, _ := store.GetJSON[map[string]bool](s.cache, store.ProgressKey(userID))
	if cached == nil {
		cached = map[string]bool{}
	}
	cached[lessonID] = completed
	if err := store.SetJSON(s.cache, store.ProgressKey(userID), cached); err != nil {
		return err
	}

	if err := callRemote(ctx, progressTimeout, func(ctx context.Context) error {
		return s.backend.UpsertProgress(ctx, models.ProgressRecord{
			UserID:    userID,
			LessonID:  lessonID,
			Completed: completed,
			UpdatedAt: time.Now().UTC(),
		})
	}); swallowed(err) {
		s.logger.Printf("progress for user %s saved locally, remote upsert failed: %v", userID, err)
	}
	return nil
}
