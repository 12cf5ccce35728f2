package adminController

import (
	"examdesk/database"
	"examdesk/middleware"
	"examdesk/services/examsession"

	"github.com/gofiber/fiber/v2"
)

// ViewResults returns every result in the system, unfiltered.
func ViewResults(c *fiber.Ctx) error {
	svc := examsession.NewService(database.Database.Db)

	results, err := svc.AllResults()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to retrieve results!", nil)
	}

	// Empty is a non-error signal, reported the same way the legacy API did.
	if len(results) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No results found.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Results retrieved successfully!", results)
}
