package adminController

import (
	"examdesk/database"
	"examdesk/middleware"
	"examdesk/models"

	"github.com/gofiber/fiber/v2"
)

// AddCourse creates a new course
func AddCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*struct {
		CourseCode        string `json:"course_code" validate:"required"`
		CourseTitle       string `json:"course_title" validate:"required"`
		CourseDescription string `json:"course_description" validate:"required"`
		Department        string `json:"department" validate:"required"`
		Level             int    `json:"level" validate:"required,gt=0"`
		Credits           int    `json:"credits" validate:"required,gt=0"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("course_code = ?", reqData.CourseCode).First(&models.Course{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course code already exists!", nil)
	}

	course := models.Course{
		CourseCode:        reqData.CourseCode,
		CourseTitle:       reqData.CourseTitle,
		CourseDescription: reqData.CourseDescription,
		Department:        reqData.Department,
		Level:             reqData.Level,
		Credits:           reqData.Credits,
	}

	if err := db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course added successfully!", course)
}
