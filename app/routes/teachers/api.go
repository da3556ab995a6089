package teachers

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mokykla/app/database"
)

var validate = validator.New()

type createTeacherRequest struct {
	Name    string `json:"name" validate:"required"`
	Surname string `json:"surname" validate:"required"`
}

func GetTeachersAPI(c *fiber.Ctx, db *sql.DB) error {
	teachers, err := database.GetAllTeachers(db)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"teachers": teachers,
		"count":    len(teachers),
	})
}

func CreateTeacherAPI(c *fiber.Ctx, db *sql.DB) error {
	var req createTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Name and surname are required"})
	}

	id, err := database.CreateTeacher(db, req.Name, req.Surname)
	if err != nil {
		return err
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Teacher created successfully",
		"id":      id,
	})
}

func DeleteTeacherAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid teacher id"})
	}

	summary, err := database.DeleteTeacher(db, id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Teacher deleted successfully",
		"removed": summary,
	})
}
