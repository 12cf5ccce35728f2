package studentController

import (
	"errors"
	"examdesk/database"
	"examdesk/middleware"
	"examdesk/services/examsession"

	"github.com/gofiber/fiber/v2"
)

// SubmitAnswers records a batch of answers for an open attempt. Writes are
// gated by the exam's submission window.
func SubmitAnswers(c *fiber.Ctx) error {
	studentID, ok := c.Locals("studentId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAnswers").(*struct {
		ExamID  uint
		Answers []examsession.AnswerInput
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	svc := examsession.NewService(database.Database.Db)

	inserted, err := svc.RecordAnswers(studentID, reqData.ExamID, reqData.Answers)
	if err != nil {
		switch {
		case errors.Is(err, examsession.ErrNoAnswers), errors.Is(err, examsession.ErrInvalidAnswer):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		case errors.Is(err, examsession.ErrExamNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exam not found!", nil)
		case errors.Is(err, examsession.ErrNotEnrolled):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Student is not enrolled in this exam.", nil)
		case errors.Is(err, examsession.ErrQuestionNotInExam):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "One or more answers refer to questions that are not part of this exam.", nil)
		case errors.Is(err, examsession.ErrTimeUp):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Time's up! You cannot submit answers anymore.", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit answers!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answers submitted successfully!", fiber.Map{
		"inserted_count": inserted,
	})
}
