package controllers

import (
	"github.com/gofiber/fiber/v2"

	"academy/middleware"
	"academy/services"
	"academy/utils"
)

type ProgressController struct {
	Progress *services.ProgressService
}

func NewProgressController(progress *services.ProgressService) *ProgressController {
	return &ProgressController{Progress: progress}
}

type ToggleProgressRequest struct {
	Completed bool `json:"completed"`
}

// Get returns the caller's own completion map; progress is never visible
// across users.
func (pc *ProgressController) Get(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, pc.Progress.Get(c.Context(), middleware.UserID(c)))
}

func (pc *ProgressController) Toggle(c *fiber.Ctx) error {
	var input ToggleProgressRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if err := pc.Progress.Toggle(c.Context(), middleware.UserID(c), c.Params("lessonId"), input.Completed); err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"lessonId":  c.Params("lessonId"),
		"completed": input.Completed,
	})
}
