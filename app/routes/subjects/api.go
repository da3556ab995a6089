package subjects

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mokykla/app/database"
)

var validate = validator.New()

type createSubjectRequest struct {
	Name string `json:"name" validate:"required"`
}

func GetSubjectsAPI(c *fiber.Ctx, db *sql.DB) error {
	subjects, err := database.GetAllSubjects(db)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"subjects": subjects,
		"count":    len(subjects),
	})
}

func CreateSubjectAPI(c *fiber.Ctx, db *sql.DB) error {
	var req createSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Name is required"})
	}

	id, err := database.CreateSubject(db, req.Name)
	if err != nil {
		return err
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Subject created successfully",
		"id":      id,
	})
}

func DeleteSubjectAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid subject id"})
	}

	summary, err := database.DeleteSubject(db, id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Subject deleted successfully",
		"removed": summary,
	})
}
