package adminValidator

import (
	"examdesk/middleware"
	"examdesk/models"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func init() {
	// Report validation errors under the json field name, not the Go name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

func validationErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				errors[fe.Field()] = "This field is required!"
			case "email":
				errors[fe.Field()] = "Must be a valid email address!"
			case "gt":
				errors[fe.Field()] = "Must be greater than " + fe.Param() + "!"
			default:
				errors[fe.Field()] = "Invalid value!"
			}
		}
	}
	return errors
}

func AddStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			StudentID  string `json:"student_id" validate:"required"`
			Name       string `json:"name" validate:"required"`
			Email      string `json:"email" validate:"required,email"`
			Department string `json:"department" validate:"required"`
			Level      int    `json:"level" validate:"required,gt=0"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedStudent", reqData)
		return c.Next()
	}
}

func AddCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseCode        string `json:"course_code" validate:"required"`
			CourseTitle       string `json:"course_title" validate:"required"`
			CourseDescription string `json:"course_description" validate:"required"`
			Department        string `json:"department" validate:"required"`
			Level             int    `json:"level" validate:"required,gt=0"`
			Credits           int    `json:"credits" validate:"required,gt=0"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func AddExam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ExamCode        string `json:"exam_code" validate:"required"`
			ExamTitle       string `json:"exam_title" validate:"required"`
			CourseCode      string `json:"course_code" validate:"required"`
			StartAt         string `json:"start_at" validate:"required"`
			DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		startAt, err := time.Parse(time.RFC3339, reqData.StartAt)
		if err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"start_at": "Must be a valid RFC3339 timestamp!",
			})
		}

		c.Locals("validatedExam", &struct {
			ExamCode        string
			ExamTitle       string
			CourseCode      string
			StartAt         time.Time
			DurationMinutes int
		}{
			ExamCode:        strings.TrimSpace(reqData.ExamCode),
			ExamTitle:       reqData.ExamTitle,
			CourseCode:      strings.TrimSpace(reqData.CourseCode),
			StartAt:         startAt,
			DurationMinutes: reqData.DurationMinutes,
		})
		return c.Next()
	}
}

func AddQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			QuestionText  string   `json:"question_text" validate:"required"`
			QuestionType  string   `json:"question_type" validate:"required,oneof=MCQ ESSAY"`
			CourseCode    string   `json:"course_code" validate:"required"`
			ExamCode      string   `json:"exam_code" validate:"required"`
			Options       []string `json:"options"`
			CorrectAnswer string   `json:"correct_answer"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		errors := make(map[string]string)

		if reqData.QuestionType == models.QuestionTypeMCQ {
			if len(reqData.Options) == 0 {
				errors["options"] = "Options are required for MCQ type!"
			}
			if reqData.CorrectAnswer == "" {
				errors["correct_answer"] = "A correct answer is required for MCQ type!"
			} else {
				found := false
				for _, opt := range reqData.Options {
					if opt == reqData.CorrectAnswer {
						found = true
						break
					}
				}
				if !found {
					errors["correct_answer"] = "Correct answer must be one of the options!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", &struct {
			QuestionText  string
			QuestionType  string
			CourseCode    string
			ExamCode      string
			Options       []string
			CorrectAnswer string
		}{
			QuestionText:  reqData.QuestionText,
			QuestionType:  reqData.QuestionType,
			CourseCode:    strings.TrimSpace(reqData.CourseCode),
			ExamCode:      strings.TrimSpace(reqData.ExamCode),
			Options:       reqData.Options,
			CorrectAnswer: reqData.CorrectAnswer,
		})
		return c.Next()
	}
}

func EnrollStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			StudentID uint `json:"student_id" validate:"required"`
			CourseID  uint `json:"course_id" validate:"required"`
			ExamID    uint `json:"exam_id" validate:"required"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}
