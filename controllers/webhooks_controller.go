package controllers

import (
	"github.com/gofiber/fiber/v2"

	"academy/models"
	"academy/services"
	"academy/utils"
)

type WebhooksController struct {
	Webhooks *services.WebhookService
}

func NewWebhooksController(webhooks *services.WebhookService) *WebhooksController {
	return &WebhooksController{Webhooks: webhooks}
}

type WebhookRequest struct {
	Name      string `json:"name" validate:"required"`
	TargetURL string `json:"targetUrl" validate:"required,url"`
	EventType string `json:"eventType" validate:"required"`
	Active    bool   `json:"active"`
}

func (wc *WebhooksController) List(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, wc.Webhooks.FetchAll(c.Context()))
}

func (wc *WebhooksController) Create(c *fiber.Ctx) error {
	var input WebhookRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := validateStruct(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	sub, err := wc.Webhooks.Save(c.Context(), models.WebhookSubscription{
		Name:      input.Name,
		TargetURL: input.TargetURL,
		EventType: input.EventType,
		Active:    input.Active,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Created(c, sub)
}

func (wc *WebhooksController) Update(c *fiber.Ctx) error {
	var input WebhookRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := validateStruct(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	sub, err := wc.Webhooks.Save(c.Context(), models.WebhookSubscription{
		ID:        c.Params("id"),
		Name:      input.Name,
		TargetURL: input.TargetURL,
		EventType: input.EventType,
		Active:    input.Active,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, sub)
}

func (wc *WebhooksController) Delete(c *fiber.Ctx) error {
	if err := wc.Webhooks.Remove(c.Context(), c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return utils.NoContent(c)
}
