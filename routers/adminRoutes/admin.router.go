package adminRoutes

import (
	adminControllers "examdesk/controllers/admin"
	"examdesk/middleware"
	adminValidators "examdesk/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up all admin-facing routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))

	adminGroup.Post("/student", adminValidators.AddStudent(), adminControllers.AddStudent)
	adminGroup.Post("/course", adminValidators.AddCourse(), adminControllers.AddCourse)
	adminGroup.Post("/exam", adminValidators.AddExam(), adminControllers.AddExam)
	adminGroup.Post("/question", adminValidators.AddQuestion(), adminControllers.AddQuestion)
	adminGroup.Post("/enroll", adminValidators.EnrollStudent(), adminControllers.EnrollStudent)

	adminGroup.Get("/results", adminControllers.ViewResults)
}
