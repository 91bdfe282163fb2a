package controllers

import (
	"github.com/gofiber/fiber/v2"

	"academy/models"
	"academy/services"
	"academy/utils"
)

type LayoutController struct {
	Layout *services.LayoutService
}

func NewLayoutController(layout *services.LayoutService) *LayoutController {
	return &LayoutController{Layout: layout}
}

func (lc *LayoutController) GetBlocks(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, lc.Layout.GetBlocks(c.Context()))
}

// SaveBlocks persists the page composition. This is the one save path
// where a remote failure reaches the caller.
func (lc *LayoutController) SaveBlocks(c *fiber.Ctx) error {
	var blocks []models.PageBlock
	if err := c.BodyParser(&blocks); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	for _, block := range blocks {
		if !block.Type.Valid() {
			return utils.BadRequest(c, "Unknown block type: "+string(block.Type))
		}
	}

	if err := lc.Layout.SaveBlocks(c.Context(), blocks); err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, blocks)
}
