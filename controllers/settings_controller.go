package controllers

import (
	"github.com/gofiber/fiber/v2"

	"academy/models"
	"academy/services"
	"academy/utils"
)

type SettingsController struct {
	Settings *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{Settings: settings}
}

func (sc *SettingsController) GetTheme(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, sc.Settings.GetTheme(c.Context()))
}

func (sc *SettingsController) UpdateTheme(c *fiber.Ctx) error {
	var theme models.ThemeConfig
	if err := c.BodyParser(&theme); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if err := sc.Settings.UpdateTheme(c.Context(), theme); err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, theme)
}
