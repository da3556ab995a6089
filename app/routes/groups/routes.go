package groups

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"mokykla/app/routes/auth"
)

// SetupGroupsRoutes sets up the group, curriculum and membership routes.
func SetupGroupsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/groups")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetGroupsAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateGroupAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteGroupAPI(c, db) })

	// Curriculum: which subjects a group's members take
	curricula := app.Group("/api/curricula")
	curricula.Use(auth.AuthMiddleware)
	curricula.Get("/", func(c *fiber.Ctx) error { return GetCurriculaAPI(c, db) })
	curricula.Post("/", func(c *fiber.Ctx) error { return AddCurriculumAPI(c, db) })
	curricula.Delete("/:group_id/:subject_id", func(c *fiber.Ctx) error { return RemoveCurriculumAPI(c, db) })

	// Membership: the single active student-to-group link
	memberships := app.Group("/api/memberships")
	memberships.Use(auth.AuthMiddleware)
	memberships.Get("/", func(c *fiber.Ctx) error { return GetMembershipsAPI(c, db) })
	memberships.Post("/", func(c *fiber.Ctx) error { return AddMembershipAPI(c, db) })
	memberships.Delete("/:group_id/:student_id", func(c *fiber.Ctx) error { return RemoveMembershipAPI(c, db) })
}
