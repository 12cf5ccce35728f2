package authController

import (
	"examdesk/database"
	"examdesk/middleware"
	"examdesk/models"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Login authenticates a student or admin by registration number (or email)
// and password, and issues a JWT carrying the account role.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		StudentID string `json:"student_id"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var student models.Student
	query := db.Where("is_deleted = ?", false)
	if reqData.StudentID != "" {
		query = query.Where("student_id = ?", reqData.StudentID)
	} else {
		query = query.Where("email = ?", reqData.Email)
	}
	if err := query.First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	token, err := middleware.GenerateJWT(student.ID, student.Name, student.Role, student.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token":   token,
		"student": student,
	})
}
