package grades

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mokykla/app/database"
	"mokykla/app/models"
)

var validate = validator.New()

// The 1-10 range is a boundary concern; the engine itself stores any
// integer it is handed.
type gradeRequest struct {
	StudentID int `json:"student_id" validate:"required"`
	SubjectID int `json:"subject_id" validate:"required"`
	Value     int `json:"value" validate:"required,min=1,max=10"`
}

func GetGradeAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID, err := c.ParamsInt("student_id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student id"})
	}
	subjectID, err := c.ParamsInt("subject_id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid subject id"})
	}

	value, ok, err := database.CurrentGrade(db, studentID, subjectID)
	if err != nil {
		return err
	}
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "No grade recorded"})
	}

	return c.JSON(models.Grade{
		StudentID: studentID,
		SubjectID: subjectID,
		Value:     value,
	})
}

func AddGradeAPI(c *fiber.Ctx, db *sql.DB) error {
	var req gradeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Grade must be between 1 and 10"})
	}

	if err := database.AddGrade(db, req.StudentID, req.SubjectID, req.Value); err != nil {
		return err
	}

	return c.Status(201).JSON(fiber.Map{"message": "Grade recorded"})
}

func UpdateGradeAPI(c *fiber.Ctx, db *sql.DB) error {
	var req gradeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Grade must be between 1 and 10"})
	}

	if err := database.UpdateGrade(db, req.StudentID, req.SubjectID, req.Value); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Grade updated"})
}

func DeleteGradeAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID, err := c.ParamsInt("student_id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student id"})
	}
	subjectID, err := c.ParamsInt("subject_id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid subject id"})
	}

	if err := database.DeleteGrade(db, studentID, subjectID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Grade removed"})
}
