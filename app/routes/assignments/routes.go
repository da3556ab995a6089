package assignments

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"mokykla/app/routes/auth"
)

// SetupAssignmentsRoutes sets up the teacher-subject assignment routes.
func SetupAssignmentsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/assignments")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetAssignmentsAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return AddAssignmentAPI(c, db) })
	api.Delete("/:teacher_id/:subject_id", func(c *fiber.Ctx) error { return RemoveAssignmentAPI(c, db) })
}
