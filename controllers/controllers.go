package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"academy/services"
	"academy/store"
	"academy/utils"
)

var validate = validator.New()

// validateStruct turns validator failures into a field -> message map for
// the validation error response. Invalid input is rejected before any
// write is attempted.
func validateStruct(input interface{}) map[string]string {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = "failed on rule: " + fe.Tag()
		}
	} else {
		fields["input"] = err.Error()
	}
	return fields
}

// serviceError maps sync-service errors onto HTTP statuses. The capacity
// error keeps its own status and guidance so the UI can react to it.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrCapacityExceeded):
		return c.Status(fiber.StatusInsufficientStorage).JSON(utils.ErrorResponse{
			Success: false,
			Error:   "Storage Full",
			Message: "Local storage is full. Link large files and images instead of embedding them.",
		})
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFound(c, err.Error())
	case errors.Is(err, services.ErrEmailExists):
		return utils.Error(c, fiber.StatusConflict, err)
	case errors.Is(err, services.ErrNotPending):
		return utils.Error(c, fiber.StatusConflict, err)
	case errors.Is(err, services.ErrInvalidCredentials):
		return utils.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired), errors.Is(err, services.ErrTextRequired):
		return utils.BadRequest(c, err.Error())
	default:
		return utils.InternalServerError(c, err.Error())
	}
}
