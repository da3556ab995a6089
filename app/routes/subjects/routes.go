package subjects

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"mokykla/app/routes/auth"
)

// SetupSubjectsRoutes sets up all subject-related routes
func SetupSubjectsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/subjects")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetSubjectsAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateSubjectAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteSubjectAPI(c, db) })
}
