package students

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mokykla/app/database"
)

var validate = validator.New()

type createStudentRequest struct {
	Name    string `json:"name" validate:"required"`
	Surname string `json:"surname" validate:"required"`
}

func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	students, err := database.GetAllStudents(db)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req createStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Name and surname are required"})
	}

	id, err := database.CreateStudent(db, req.Name, req.Surname)
	if err != nil {
		return err
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Student created successfully",
		"id":      id,
	})
}

func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student id"})
	}

	summary, err := database.DeleteStudent(db, id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Student deleted successfully",
		"removed": summary,
	})
}

func GetStudentGradesAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student id"})
	}

	grades, err := database.GetStudentGrades(db, id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"grades": grades,
		"count":  len(grades),
	})
}
