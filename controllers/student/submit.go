package studentController

import (
	"errors"
	"examdesk/database"
	"examdesk/middleware"
	"examdesk/services/examsession"
	"examdesk/utils"

	"github.com/gofiber/fiber/v2"
)

// SubmitExam finalizes the attempt and grades it. Finalize is write-once: a
// repeated call returns Conflict and never re-grades.
func SubmitExam(c *fiber.Ctx) error {
	studentID, ok := c.Locals("studentId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	examID, ok := c.Locals("examID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	svc := examsession.NewService(database.Database.Db)

	result, err := svc.Finalize(studentID, examID)
	if err != nil {
		switch {
		case errors.Is(err, examsession.ErrAttemptNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No attempt found for this exam. Are you enrolled?", nil)
		case errors.Is(err, examsession.ErrAlreadySubmitted):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Exam has already been submitted!", nil)
		case errors.Is(err, examsession.ErrExamNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exam not found!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit exam!", nil)
		}
	}

	go utils.PushResultWebhook(result)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exam submitted successfully!", fiber.Map{
		"score": result.Score,
		"grade": result.Grade,
	})
}
