package routes

import (
	"github.com/gofiber/fiber/v2"

	"academy/config"
	"academy/controllers"
	"academy/middleware"
	"academy/models"
	"academy/services"
)

func SetupRoutes(app *fiber.App, svcs *services.Container, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(svcs.Auth)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	moderatorMiddleware := middleware.RequireRole(cfg, models.RoleModerator)
	adminMiddleware := middleware.RequireRole(cfg, models.RoleAdmin)

	app.Get("/api/auth/me", authMiddleware, authController.Me)

	// Public home-page surface
	settingsController := controllers.NewSettingsController(svcs.Settings)
	layoutController := controllers.NewLayoutController(svcs.Layout)
	app.Get("/api/theme", settingsController.GetTheme)
	app.Get("/api/layout", layoutController.GetBlocks)

	// Courses: reading needs a session, authoring needs MODERATOR or above
	coursesController := controllers.NewCoursesController(svcs.Courses)
	courses := app.Group("/api/courses", authMiddleware)
	courses.Get("/", coursesController.List)
	courses.Get("/:id", coursesController.Get)
	app.Post("/api/courses", moderatorMiddleware, coursesController.Create)
	app.Put("/api/courses/:id", moderatorMiddleware, coursesController.Update)
	app.Delete("/api/courses/:id", moderatorMiddleware, coursesController.Delete)

	// Comments
	commentsController := controllers.NewCommentsController(svcs.Comments, svcs.Auth)
	app.Get("/api/lessons/:lessonId/comments", authMiddleware, commentsController.ListForLesson)
	app.Post("/api/lessons/:lessonId/comments", authMiddleware, commentsController.Add)
	app.Post("/api/comments/:id/like", authMiddleware, commentsController.ToggleLike)
	app.Get("/api/comments", moderatorMiddleware, commentsController.Moderation)
	app.Put("/api/comments/:id/status", moderatorMiddleware, commentsController.SetStatus)

	// Progress (owner only; the id comes from the token, never the URL)
	progressController := controllers.NewProgressController(svcs.Progress)
	app.Get("/api/progress", authMiddleware, progressController.Get)
	app.Post("/api/progress/:lessonId", authMiddleware, progressController.Toggle)

	// User management
	usersController := controllers.NewUsersController(svcs.Users, svcs.Auth)
	app.Put("/api/me", authMiddleware, usersController.UpdateMe)
	users := app.Group("/api/users", adminMiddleware)
	users.Get("/", usersController.List)
	users.Post("/", usersController.Create)
	users.Put("/:id", usersController.Update)
	users.Delete("/:id", usersController.Delete)

	// Site configuration
	app.Put("/api/theme", adminMiddleware, settingsController.UpdateTheme)
	app.Put("/api/layout", adminMiddleware, layoutController.SaveBlocks)

	// Webhook subscriptions
	webhooksController := controllers.NewWebhooksController(svcs.Webhooks)
	webhooks := app.Group("/api/webhooks", adminMiddleware)
	webhooks.Get("/", webhooksController.List)
	webhooks.Post("/", webhooksController.Create)
	webhooks.Put("/:id", webhooksController.Update)
	webhooks.Delete("/:id", webhooksController.Delete)
}
