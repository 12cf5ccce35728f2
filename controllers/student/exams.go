package studentController

import (
	"errors"
	"examdesk/database"
	"examdesk/middleware"
	"examdesk/services/examsession"

	"github.com/gofiber/fiber/v2"
)

// GetAvailableExams lists upcoming exams for the courses the caller is
// enrolled in.
func GetAvailableExams(c *fiber.Ctx) error {
	studentID, ok := c.Locals("studentId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	svc := examsession.NewService(database.Database.Db)

	exams, err := svc.AvailableExams(studentID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch available exams!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Available exams fetched successfully!", exams)
}

// LoadExamDetails returns the exam content for an attempt: title, duration
// and questions. The answer key never appears in this payload.
func LoadExamDetails(c *fiber.Ctx) error {
	studentID, ok := c.Locals("studentId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	examID, ok := c.Locals("examID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	svc := examsession.NewService(database.Database.Db)

	payload, err := svc.LoadExam(studentID, examID)
	if err != nil {
		switch {
		case errors.Is(err, examsession.ErrNotEnrolled):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to access this exam or you are not enrolled in this exam.", nil)
		case errors.Is(err, examsession.ErrExamNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exam not found!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load exam details!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exam details loaded successfully!", payload)
}
