package grades

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"mokykla/app/routes/auth"
)

// SetupGradesRoutes sets up the grade ledger routes.
func SetupGradesRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/grades")
	api.Use(auth.AuthMiddleware)
	api.Get("/:student_id/:subject_id", func(c *fiber.Ctx) error { return GetGradeAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return AddGradeAPI(c, db) })
	api.Put("/", func(c *fiber.Ctx) error { return UpdateGradeAPI(c, db) })
	api.Delete("/:student_id/:subject_id", func(c *fiber.Ctx) error { return DeleteGradeAPI(c, db) })
}
