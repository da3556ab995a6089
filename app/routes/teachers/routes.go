package teachers

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"mokykla/app/routes/auth"
)

// SetupTeachersRoutes sets up all teacher-related routes
func SetupTeachersRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/teachers")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetTeachersAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateTeacherAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteTeacherAPI(c, db) })
}
