package controllers

import (
	"github.com/gofiber/fiber/v2"

	"academy/middleware"
	"academy/services"
	"academy/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := validateStruct(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	profile, token, err := ac.Auth.SignUp(c.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Created(c, fiber.Map{
		"token": token,
		"user":  profile.Public(),
	})
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := validateStruct(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	profile, token, err := ac.Auth.SignIn(c.Context(), input.Email, input.Password)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"token": token,
		"user":  profile.Public(),
	})
}

// Me resolves the current session to a profile, with a placeholder when
// the profile row has not landed yet.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	profile := ac.Auth.CurrentUser(c.Context(), middleware.UserID(c), middleware.UserRole(c))
	return utils.Success(c, fiber.StatusOK, profile.Public())
}
