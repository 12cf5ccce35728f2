package adminController

import (
	"errors"
	"examdesk/config"
	"examdesk/database"
	"examdesk/middleware"
	"examdesk/models"
	"examdesk/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AddStudent registers a student account with a generated temporary password
// and emails the credentials to the student.
func AddStudent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStudent").(*struct {
		StudentID  string `json:"student_id" validate:"required"`
		Name       string `json:"name" validate:"required"`
		Email      string `json:"email" validate:"required,email"`
		Department string `json:"department" validate:"required"`
		Level      int    `json:"level" validate:"required,gt=0"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("student_id = ?", reqData.StudentID).First(&models.Student{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Student with this ID already exists!", nil)
	}
	if err := db.Where("email = ?", reqData.Email).First(&models.Student{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	tempPassword := uuid.NewString()[:8]
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(tempPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	student := models.Student{
		StudentID:  reqData.StudentID,
		Name:       reqData.Name,
		Email:      reqData.Email,
		Department: reqData.Department,
		Level:      reqData.Level,
		Password:   string(hashedPassword),
		Role:       "STUDENT",
	}

	if err := db.Create(&student).Error; err != nil {
		// The pre-checks above race with concurrent inserts; the unique
		// indexes on student_id and email are the authority.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Student with this ID or email already exists!", nil)
		}
		log.Printf("Error saving student to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add student!", nil)
	}

	utils.SendStudentCredentialsEmail(student.Email, student.Name, student.StudentID, tempPassword)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Student registered and credentials sent via email.", student)
}
