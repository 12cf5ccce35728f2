package adminController

import (
	"encoding/json"
	"examdesk/database"
	"examdesk/middleware"
	"examdesk/models"

	"github.com/gofiber/fiber/v2"
)

// AddQuestion attaches a question to an exam. MCQ questions carry an ordered
// option list and a correct answer that must be one of the options; essay
// questions store neither.
func AddQuestion(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuestion").(*struct {
		QuestionText  string
		QuestionType  string
		CourseCode    string
		ExamCode      string
		Options       []string
		CorrectAnswer string
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("course_code = ? AND is_deleted = ?", reqData.CourseCode, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var exam models.Exam
	if err := db.Where("exam_code = ? AND course_id = ? AND is_deleted = ?", reqData.ExamCode, course.ID, false).First(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Exam not found!", nil)
	}

	question := models.Question{
		QuestionText: reqData.QuestionText,
		QuestionType: reqData.QuestionType,
		ExamID:       exam.ID,
		CourseID:     course.ID,
	}

	if reqData.QuestionType == models.QuestionTypeMCQ {
		optionsJSON, err := json.Marshal(reqData.Options)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid options!", nil)
		}
		question.Options = optionsJSON
		question.CorrectAnswer = reqData.CorrectAnswer
	}

	if err := db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question added successfully!", question)
}
