package adminController

import (
	"errors"
	"examdesk/database"
	"examdesk/middleware"
	"examdesk/services/examsession"

	"github.com/gofiber/fiber/v2"
)

// EnrollStudent enrolls a student in a specific exam of a specific course.
// The enrollment and its attempt record are created atomically by the
// session service.
func EnrollStudent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEnrollment").(*struct {
		StudentID uint `json:"student_id" validate:"required"`
		CourseID  uint `json:"course_id" validate:"required"`
		ExamID    uint `json:"exam_id" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	svc := examsession.NewService(database.Database.Db)

	enrollment, err := svc.Enroll(reqData.StudentID, reqData.CourseID, reqData.ExamID)
	if err != nil {
		switch {
		case errors.Is(err, examsession.ErrStudentNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
		case errors.Is(err, examsession.ErrCourseNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		case errors.Is(err, examsession.ErrExamNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No exam found for this course with the provided exam ID!", nil)
		case errors.Is(err, examsession.ErrAlreadyEnrolled):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Student is already enrolled in this exam!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll student!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Student enrolled successfully and linked to the specific exam.", enrollment)
}
