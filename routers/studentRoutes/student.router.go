package studentRoutes

import (
	studentControllers "examdesk/controllers/student"
	"examdesk/middleware"
	studentValidators "examdesk/validators/student"

	"github.com/gofiber/fiber/v2"
)

// SetupStudentRoutes sets up all student-facing exam routes
func SetupStudentRoutes(app *fiber.App) {
	examGroup := app.Group("/exam", middleware.JWTMiddleware)

	examGroup.Get("/available", studentControllers.GetAvailableExams)
	examGroup.Post("/load", studentValidators.ExamID(), studentControllers.LoadExamDetails)
	examGroup.Post("/answers", studentValidators.SubmitAnswers(), studentControllers.SubmitAnswers)
	examGroup.Post("/submit", studentValidators.ExamID(), studentControllers.SubmitExam)
	examGroup.Get("/results", studentControllers.ViewResults)
}
