package controllers

import (
	"github.com/gofiber/fiber/v2"

	"academy/middleware"
	"academy/models"
	"academy/services"
	"academy/utils"
)

type UsersController struct {
	Users *services.UserService
	Auth  *services.AuthService
}

func NewUsersController(users *services.UserService, auth *services.AuthService) *UsersController {
	return &UsersController{Users: users, Auth: auth}
}

type CreateUserRequest struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=6"`
	Role     models.Role `json:"role"`
}

type UpdateUserRequest struct {
	Name         string            `json:"name"`
	Role         models.Role       `json:"role"`
	Avatar       string            `json:"avatar"`
	Phone        string            `json:"phone"`
	Company      string            `json:"company"`
	DisplayName  string            `json:"displayName"`
	SocialHandle string            `json:"socialHandle"`
	Status       models.UserStatus `json:"status"`
}

func (uc *UsersController) List(c *fiber.Ctx) error {
	profiles := uc.Users.FetchAll(c.Context())
	public := make([]models.PublicProfile, 0, len(profiles))
	for _, p := range profiles {
		public = append(public, p.Public())
	}
	return utils.Success(c, fiber.StatusOK, public)
}

func (uc *UsersController) Create(c *fiber.Ctx) error {
	var input CreateUserRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := validateStruct(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	profile, _, err := uc.Auth.CreateUser(c.Context(), input.Name, input.Email, input.Password, input.Role)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Created(c, profile.Public())
}

func (uc *UsersController) Update(c *fiber.Ctx) error {
	profile, err := uc.Users.FindByID(c.Context(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}

	var input UpdateUserRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	applyProfileUpdate(&profile, input, true)

	saved, err := uc.Users.Save(c.Context(), profile)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, saved.Public())
}

// UpdateMe lets any user edit their own profile, minus role and status.
func (uc *UsersController) UpdateMe(c *fiber.Ctx) error {
	profile, err := uc.Users.FindByID(c.Context(), middleware.UserID(c))
	if err != nil {
		return serviceError(c, err)
	}

	var input UpdateUserRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	applyProfileUpdate(&profile, input, false)

	saved, err := uc.Users.Save(c.Context(), profile)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, saved.Public())
}

func (uc *UsersController) Delete(c *fiber.Ctx) error {
	if err := uc.Users.Remove(c.Context(), c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return utils.NoContent(c)
}

func applyProfileUpdate(profile *models.Profile, input UpdateUserRequest, privileged bool) {
	if input.Name != "" {
		profile.Name = input.Name
	}
	if input.Avatar != "" {
		profile.Avatar = input.Avatar
	}
	if input.Phone != "" {
		profile.Phone = input.Phone
	}
	if input.Company != "" {
		profile.Company = input.Company
	}
	if input.DisplayName != "" {
		profile.DisplayName = input.DisplayName
	}
	if input.SocialHandle != "" {
		profile.SocialHandle = input.SocialHandle
	}
	if privileged {
		if input.Role.Valid() {
			profile.Role = input.Role
		}
		if input.Status == models.UserActive || input.Status == models.UserInactive {
			profile.Status = input.Status
		}
	}
}
