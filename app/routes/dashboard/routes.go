package dashboard

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"mokykla/app/database"
	"mokykla/app/routes/auth"
)

// SetupDashboardRoutes sets up the overview endpoint.
func SetupDashboardRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/stats", func(c *fiber.Ctx) error { return GetStatsAPI(c, db) })
}

func GetStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	stats, err := database.GetStats(db)
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
