package adminController

import (
	"examdesk/database"
	"examdesk/middleware"
	"examdesk/models"
	"time"

	"github.com/gofiber/fiber/v2"
)

// AddExam schedules a new exam under a course. The exam code only has to be
// unique within its course.
func AddExam(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedExam").(*struct {
		ExamCode        string
		ExamTitle       string
		CourseCode      string
		StartAt         time.Time
		DurationMinutes int
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("course_code = ? AND is_deleted = ?", reqData.CourseCode, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := db.Where("exam_code = ? AND course_id = ?", reqData.ExamCode, course.ID).First(&models.Exam{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Exam with this code already exists for the course!", nil)
	}

	exam := models.Exam{
		ExamCode:        reqData.ExamCode,
		ExamTitle:       reqData.ExamTitle,
		CourseID:        course.ID,
		StartAt:         reqData.StartAt,
		DurationMinutes: reqData.DurationMinutes,
	}

	if err := db.Create(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add exam!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Exam added successfully!", exam)
}
