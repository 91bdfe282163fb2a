package services

import (
	"context"
	"log"

	"gorm.io/datatypes"

	"academy/models"
	"academy/remote"
	"academy/store"
)

// SettingsService syncs the singleton theme document.
type SettingsService struct {
	cache   store.Store
	backend remote.Backend
	logger  *log.Logger
}

func NewSettingsService(cache store.Store, backend remote.Backend, logger *log.Logger) *SettingsService {
	return &SettingsService{cache: cache, backend: backend, logger: logger}
}

// GetTheme returns the stored theme, the cached theme when the backend is
// unreachable, or the built-in default when nothing was ever saved.
func (s *SettingsService) GetTheme(ctx context.Context) models.ThemeConfig {
	var settings models.Settings
	err := callRemote(ctx, settingsTimeout, func(ctx context.Context) error {
		var err error
		settings, err = s.backend.GetSettings(ctx)
		return err
	})
	if err == nil {
		theme := settings.ThemeConfig.Data()
		if err := store.SetJSON(s.cache, store.KeyTheme, theme); err != nil {
			s.logger.Printf("theme cache refresh failed: %v", err)
		}
		return theme
	}

	if swallowed(err) && !remote.IsNotFound(err) {
		s.logger.Printf("theme fetch failed, serving cache: %v", err)
	}
	if cached, ok := store.GetJSON[models.ThemeConfig](s.cache, store.KeyTheme); ok {
		return cached
	}
	return models.DefaultTheme()
}

// UpdateTheme writes local-first; a remote failure is logged and the next
// GetTheme reconciles.
func (s *SettingsService) UpdateTheme(ctx context.Context, theme models.ThemeConfig) error {
	if err := store.SetJSON(s.cache, store.KeyTheme, theme); err != nil {
		return err
	}

	if err := callRemote(ctx, settingsTimeout, func(ctx context.Context) error {
		return s.backend.SaveSettings(ctx, models.Settings{
			ID:          1,
			ThemeConfig: datatypes.NewJSONType(theme),
		})
	}); swallowed(err) {
		s.logger.Printf("theme saved locally, remote update failed: %v", err)
	}
	return nil
}
