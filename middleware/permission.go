package middleware

import (
	"examdesk/database"
	"examdesk/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a middleware that checks the caller's account carries
// the required role. The role claim in the token is advisory only; the
// database row is authoritative.
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		studentID, ok := c.Locals("studentId").(uint)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized: Student ID not found",
				"data":    nil,
			})
		}

		var student models.Student
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", studentID, false).First(&student).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Account not found!",
				"data":    nil,
			})
		}

		if student.Role != requiredRole {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  false,
				"message": "You do not have permission to access this resource!",
				"data":    nil,
			})
		}

		return c.Next()
	}
}
