package main

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"mokykla/app/config"
	"mokykla/app/database"
	"mokykla/app/routes/assignments"
	"mokykla/app/routes/auth"
	"mokykla/app/routes/dashboard"
	"mokykla/app/routes/grades"
	"mokykla/app/routes/groups"
	"mokykla/app/routes/students"
	"mokykla/app/routes/subjects"
	"mokykla/app/routes/teachers"
)

// errorHandler maps engine outcomes to HTTP statuses. Validation
// outcomes carry their own message; anything else is a store failure
// and the caller only learns it should retry.
func errorHandler(c *fiber.Ctx, err error) error {
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
	}

	switch {
	case errors.Is(err, database.ErrNotFound), errors.Is(err, database.ErrRelationNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, database.ErrAlreadyExists),
		errors.Is(err, database.ErrAlreadyAssigned),
		errors.Is(err, database.ErrAlreadyGraded),
		errors.Is(err, database.ErrDuplicateName),
		errors.Is(err, database.ErrDuplicatePerson):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, database.ErrNotEnrolled),
		errors.Is(err, database.ErrNoGrade),
		errors.Is(err, database.ErrUnchanged):
		return c.Status(422).JSON(fiber.Map{"error": err.Error()})
	}

	log.Printf("Internal error: %v", err)
	return c.Status(500).JSON(fiber.Map{"error": "Store unavailable, please try again"})
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	if err := database.CreateSchema(db); err != nil {
		log.Fatal("Failed to create schema: ", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	auth.SetupAuthRoutes(app, db)
	dashboard.SetupDashboardRoutes(app, db)
	students.SetupStudentsRoutes(app, db)
	teachers.SetupTeachersRoutes(app, db)
	subjects.SetupSubjectsRoutes(app, db)
	groups.SetupGroupsRoutes(app, db)
	assignments.SetupAssignmentsRoutes(app, db)
	grades.SetupGradesRoutes(app, db)

	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("Server failed: ", err)
	}
}
