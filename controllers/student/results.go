package studentController

import (
	"examdesk/database"
	"examdesk/middleware"
	"examdesk/services/examsession"

	"github.com/gofiber/fiber/v2"
)

// ViewResults returns the caller's own results only.
func ViewResults(c *fiber.Ctx) error {
	studentID, ok := c.Locals("studentId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	svc := examsession.NewService(database.Database.Db)

	results, err := svc.ResultsForStudent(studentID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to retrieve results!", nil)
	}

	// Empty is a non-error signal, reported the same way the legacy API did.
	if len(results) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No results found for this student.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "This is your result.", results)
}
