package controllers

import (
	"github.com/gofiber/fiber/v2"

	"academy/models"
	"academy/services"
	"academy/utils"
)

type CoursesController struct {
	Courses *services.CourseService
}

func NewCoursesController(courses *services.CourseService) *CoursesController {
	return &CoursesController{Courses: courses}
}

func (cc *CoursesController) List(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, cc.Courses.FetchAll(c.Context()))
}

func (cc *CoursesController) Get(c *fiber.Ctx) error {
	course, err := cc.Courses.Get(c.Context(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, course)
}

// Create saves a new course. Temporary builder ids are promoted to
// permanent ones here; the response carries the final identifier.
func (cc *CoursesController) Create(c *fiber.Ctx) error {
	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	saved, err := cc.Courses.Save(c.Context(), course)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Created(c, saved)
}

func (cc *CoursesController) Update(c *fiber.Ctx) error {
	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	course.ID = c.Params("id")

	saved, err := cc.Courses.Save(c.Context(), course)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, saved)
}

func (cc *CoursesController) Delete(c *fiber.Ctx) error {
	if err := cc.Courses.Remove(c.Context(), c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return utils.NoContent(c)
}
