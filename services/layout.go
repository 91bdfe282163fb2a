package services

import (
	"context"
	"fmt"
	"log"

	"academy/models"
	"academy/remote"
	"academy/store"
)

// LayoutService syncs the home-page block sequence. Unlike the other
// families, a failed remote save is surfaced to the caller: the builder UI
// needs an explicit failure signal for layout persistence.
type LayoutService struct {
	cache   store.Store
	backend remote.Backend
	logger  *log.Logger
}

func NewLayoutService(cache store.Store, backend remote.Backend, logger *log.Logger) *LayoutService {
	return &LayoutService{cache: cache, backend: backend, logger: logger}
}

// GetBlocks returns the composed home page. An unreachable backend falls
// back to the cache, an empty backend keeps a non-empty cache, and a fresh
// deployment gets the default hero banner.
func (s *LayoutService) GetBlocks(ctx context.Context) []models.PageBlock {
	var fetched []models.PageBlock
	err := callRemote(ctx, layoutTimeout, func(ctx context.Context) error {
		var err error
		fetched, err = s.backend.ListBlocks(ctx)
		return err
	})
	if err != nil {
		if swallowed(err) {
			s.logger.Printf("layout fetch failed, serving cache: %v", err)
		}
		if cached, ok := store.GetJSON[[]models.PageBlock](s.cache, store.KeyLayout); ok && len(cached) > 0 {
			return cached
		}
		return models.DefaultLayout()
	}

	if len(fetched) == 0 {
		if cached, ok := store.GetJSON[[]models.PageBlock](s.cache, store.KeyLayout); ok && len(cached) > 0 {
			return cached
		}
		return models.DefaultLayout()
	}

	if err := store.SetJSON(s.cache, store.KeyLayout, fetched); err != nil {
		s.logger.Printf("layout cache refresh failed: %v", err)
	}
	return fetched
}

// SaveBlocks persists the whole sequence. The local write must succeed; a
// remote failure is returned as an error rather than swallowed.
func (s *LayoutService) SaveBlocks(ctx context.Context, blocks []models.PageBlock) error {
	for i := range blocks {
		blocks[i].Position = i
		if blocks[i].ID == "" {
			blocks[i].ID = fmt.Sprintf("b%d", i+1)
		}
	}

	if err := store.SetJSON(s.cache, store.KeyLayout, blocks); err != nil {
		return err
	}

	err := callRemote(ctx, layoutTimeout, func(ctx context.Context) error {
		return s.backend.ReplaceBlocks(ctx, blocks)
	})
	if swallowed(err) {
		return fmt.Errorf("layout saved locally but the server write failed: %w", err)
	}
	return nil
}
