package studentValidator

import (
	"examdesk/middleware"
	"examdesk/services/examsession"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ExamID validates the exam identifier in the request body and stores it in
// the context. Used by both exam loading and finalize.
func ExamID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ExamID uint `json:"exam_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.ExamID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Exam ID is required!", nil)
		}

		c.Locals("examID", reqData.ExamID)
		return c.Next()
	}
}

// SubmitAnswers validates the answer batch payload.
func SubmitAnswers() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ExamID  uint `json:"exam_id"`
			Answers []struct {
				QuestionID     uint   `json:"question_id"`
				SelectedOption string `json:"selected_option"`
			} `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ExamID == 0 {
			errors["exam_id"] = "Exam ID is required!"
		}

		if len(reqData.Answers) == 0 {
			errors["answers"] = "Answers must be a non-empty list!"
		} else {
			for _, a := range reqData.Answers {
				if a.QuestionID == 0 || strings.TrimSpace(a.SelectedOption) == "" {
					errors["answers"] = "Each answer must include a question ID and a selected option!"
					break
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		answers := make([]examsession.AnswerInput, 0, len(reqData.Answers))
		for _, a := range reqData.Answers {
			answers = append(answers, examsession.AnswerInput{
				QuestionID:     a.QuestionID,
				SelectedOption: a.SelectedOption,
			})
		}

		c.Locals("validatedAnswers", &struct {
			ExamID  uint
			Answers []examsession.AnswerInput
		}{
			ExamID:  reqData.ExamID,
			Answers: answers,
		})
		return c.Next()
	}
}
