package adminController

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"examdesk/config"
	"examdesk/database"
	"examdesk/models"
	adminValidator "examdesk/validators/admin"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newStudentTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{SaltRound: 4}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Student{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/admin/student", adminValidator.AddStudent(), AddStudent)
	return app
}

func postStudent(t *testing.T, app *fiber.App, body map[string]interface{}) int {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, "/admin/student", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAddStudent(t *testing.T) {
	body := map[string]interface{}{
		"student_id": "S001",
		"name":       "Test Student",
		"email":      "s001@example.edu",
		"department": "Computer Science",
		"level":      100,
	}

	t.Run("registers a new student", func(t *testing.T) {
		app := newStudentTestApp(t)
		assert.Equal(t, fiber.StatusCreated, postStudent(t, app, body))
	})

	t.Run("duplicate registration conflicts", func(t *testing.T) {
		app := newStudentTestApp(t)
		require.Equal(t, fiber.StatusCreated, postStudent(t, app, body))
		assert.Equal(t, fiber.StatusConflict, postStudent(t, app, body))
	})

	t.Run("unique violation on insert maps to conflict", func(t *testing.T) {
		app := newStudentTestApp(t)
		require.Equal(t, fiber.StatusCreated, postStudent(t, app, body))

		// Soft-delete the row: the lookup pre-checks no longer see it, but
		// the unique index still holds student_id and email, so the insert
		// itself collides. Same shape as losing a race with a concurrent
		// registration.
		require.NoError(t, database.Database.Db.
			Where("student_id = ?", "S001").
			Delete(&models.Student{}).Error)

		assert.Equal(t, fiber.StatusConflict, postStudent(t, app, body))

		var live int64
		database.Database.Db.Model(&models.Student{}).Where("student_id = ?", "S001").Count(&live)
		assert.Equal(t, int64(0), live)
	})
}
