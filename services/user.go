package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"academy/models"
	"academy/remote"
	"academy/store"
)

// UserService syncs the profile collection. The cached copy keeps password
// hashes so credential checks keep working while the backend is down;
// profiles are sanitized at the HTTP boundary, not here.
type UserService struct {
	cache   store.Store
	backend remote.Backend
	logger  *log.Logger
}

func NewUserService(cache store.Store, backend remote.Backend, logger *log.Logger) *UserService {
	return &UserService{cache: cache, backend: backend, logger: logger}
}

func (s *UserService) FetchAll(ctx context.Context) []models.Profile {
	var fetched []models.Profile
	err := callRemote(ctx, profileTimeout, func(ctx context.Context) error {
		var err error
		fetched, err = s.backend.ListProfiles(ctx)
		return err
	})
	if err != nil {
		if swallowed(err) {
			s.logger.Printf("profile fetch failed, serving cache: %v", err)
		}
		cached, _ := store.GetJSON[[]models.Profile](s.cache, store.KeyProfiles)
		return cached
	}

	if err := store.SetJSON(s.cache, store.KeyProfiles, fetched); err != nil {
		s.logger.Printf("profile cache refresh failed: %v", err)
	}
	return fetched
}

func (s *UserService) FindByID(ctx context.Context, id string) (models.Profile, error) {
	if cached, ok := store.GetJSON[[]models.Profile](s.cache, store.KeyProfiles); ok {
		for _, p := range cached {
			if p.ID == id {
				return p, nil
			}
		}
	}
	for _, p := range s.FetchAll(ctx) {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Profile{}, ErrNotFound
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (models.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, p := range s.FetchAll(ctx) {
		if strings.ToLower(p.Email) == email {
			return p, nil
		}
	}
	return models.Profile{}, ErrNotFound
}

// Save assigns an identity id when missing and writes local-first.
func (s *UserService) Save(ctx context.Context, profile models.Profile) (models.Profile, error) {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	if profile.Avatar == "" {
		profile.Avatar = models.DefaultAvatar
	}
	if profile.Status == "" {
		profile.Status = models.UserActive
	}
	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	cached, _ := store.GetJSON[[]models.Profile](s.cache, store.KeyProfiles)
	cached = upsertByID(cached, profile, func(p models.Profile) string { return p.ID })
	if err := store.SetJSON(s.cache, store.KeyProfiles, cached); err != nil {
		return models.Profile{}, err
	}

	if err := callRemote(ctx, profileTimeout, func(ctx context.Context) error {
		return s.backend.UpsertProfile(ctx, profile)
	}); swallowed(err) {
		s.logger.Printf("profile %s saved locally, remote upsert failed: %v", profile.ID, err)
	}
	return profile, nil
}

func (s *UserService) Remove(ctx context.Context, id string) error {
	cached, _ := store.GetJSON[[]models.Profile](s.cache, store.KeyProfiles)
	cached = removeByID(cached, id, func(p models.Profile) string { return p.ID })
	if err := store.SetJSON(s.cache, store.KeyProfiles, cached); err != nil {
		return err
	}

	if err := callRemote(ctx, profileTimeout, func(ctx context.Context) error {
		return s.backend.DeleteProfile(ctx, id)
	}); swallowed(err) {
		s.logger.Printf("profile %s removed locally, remote delete failed: %v", id, err)
	}
	return nil
}
