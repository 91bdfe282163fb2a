package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"academy/models"
	"academy/remote"
	"academy/store"
)

// WebhookService maintains subscription records. Delivery is a server-side
// concern elsewhere; this is plain synced CRUD.
type WebhookService struct {
	cache   store.Store
	backend remote.Backend
	logger  *log.Logger
}

func NewWebhookService(cache store.Store, backend remote.Backend, logger *log.Logger) *WebhookService {
	return &WebhookService{cache: cache, backend: backend, logger: logger}
}

func (s *WebhookService) FetchAll(ctx context.Context) []models.WebhookSubscription {
	var fetched []models.WebhookSubscription
	err := callRemote(ctx, webhookTimeout, func(ctx context.Context) error {
		var err error
		fetched, err = s.backend.ListWebhooks(ctx)
		return err
	})
	if err != nil {
		if swallowed(err) {
			s.logger.Printf("webhook fetch failed, serving cache: %v", err)
		}
		cached, _ := store.GetJSON[[]models.WebhookSubscription](s.cache, store.KeyWebhooks)
		return cached
	}

	if err := store.SetJSON(s.cache, store.KeyWebhooks, fetched); err != nil {
		s.logger.Printf("webhook cache refresh failed: %v", err)
	}
	return fetched
}

func (s *WebhookService) Save(ctx context.Context, sub models.WebhookSubscription) (models.WebhookSubscription, error) {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}

	cached, _ := store.GetJSON[[]models.WebhookSubscription](s.cache, store.KeyWebhooks)
	cached = upsertByID(cached, sub, func(w models.WebhookSubscription) string { return w.ID })
	if err := store.SetJSON(s.cache, store.KeyWebhooks, cached); err != nil {
		return models.WebhookSubscription{}, err
	}

	if err := callRemote(ctx, webhookTimeout, func(ctx context.Context) error {
		return s.backend.UpsertWebhook(ctx, sub)
	}); swallowed(err) {
		s.logger.Printf("webhook %s saved locally, remote upsert failed: %v", sub.ID, err)
	}
	return sub, nil
}

func (s *WebhookService) Remove(ctx context.Context, id string) error {
	cached, _ := store.GetJSON[[]models.WebhookSubscription](s.cache, store.KeyWebhooks)
	cached = removeByID(cached, id, func(w models.WebhookSubscription) string { return w.ID })
	if err := store.SetJSON(s.cache, store.KeyWebhooks, cached); err != nil {
		return err
	}

	if err := callRemote(ctx, webhookTimeout, func(ctx context.Context) error {
		return s.backend.DeleteWebhook(ctx, id)
	}); swallowed(err) {
		s.logger.Printf("webhook %s removed locally, remote delete failed: %v", id, err)
	}
	return nil
}
