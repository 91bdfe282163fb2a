package controllers

import (
	"github.com/gofiber/fiber/v2"

	"academy/middleware"
	"academy/models"
	"academy/services"
	"academy/utils"
)

type CommentsController struct {
	Comments *services.CommentService
	Auth     *services.AuthService
}

func NewCommentsController(comments *services.CommentService, auth *services.AuthService) *CommentsController {
	return &CommentsController{Comments: comments, Auth: auth}
}

type AddCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type SetStatusRequest struct {
	LessonID string               `json:"lessonId" validate:"required"`
	Status   models.CommentStatus `json:"status" validate:"required"`
}

type LikeRequest struct {
	LessonID string `json:"lessonId" validate:"required"`
}

// ListForLesson applies the moderation visibility rule for the caller.
func (cc *CommentsController) ListForLesson(c *fiber.Ctx) error {
	comments := cc.Comments.ListForLesson(
		c.Context(),
		c.Params("lessonId"),
		middleware.UserID(c),
		middleware.UserRole(c),
	)
	return utils.Success(c, fiber.StatusOK, comments)
}

func (cc *CommentsController) Add(c *fiber.Ctx) error {
	var input AddCommentRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := validateStruct(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	author := cc.Auth.CurrentUser(c.Context(), middleware.UserID(c), middleware.UserRole(c))
	comment, err := cc.Comments.Add(c.Context(), author, c.Params("lessonId"), input.Text)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Created(c, comment)
}

// Moderation lists every comment regardless of status for the queue view.
func (cc *CommentsController) Moderation(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, cc.Comments.All(c.Context()))
}

// SetStatus applies an approve or reject decision. Rejection removes the
// comment entirely.
func (cc *CommentsController) SetStatus(c *fiber.Ctx) error {
	var input SetStatusRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := validateStruct(input); fields != nil {
		return utils.ValidationError(c, fields)
	}
	if input.Status != models.CommentApproved && input.Status != models.CommentRejected {
		return utils.BadRequest(c, "Status must be approved or rejected")
	}

	comment, err := cc.Comments.SetStatus(c.Context(), input.LessonID, c.Params("id"), input.Status)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, comment)
}

func (cc *CommentsController) ToggleLike(c *fiber.Ctx) error {
	var input LikeRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := validateStruct(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	comment, err := cc.Comments.ToggleLike(c.Context(), input.LessonID, c.Params("id"), middleware.UserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, comment)
}
