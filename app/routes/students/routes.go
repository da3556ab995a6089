package students

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"mokykla/app/routes/auth"
)

// SetupStudentsRoutes sets up all student-related routes
func SetupStudentsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetStudentsAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateStudentAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteStudentAPI(c, db) })
	api.Get("/:id/grades", func(c *fiber.Ctx) error { return GetStudentGradesAPI(c, db) })
}
