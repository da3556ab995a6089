package assignments

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mokykla/app/database"
)

var validate = validator.New()

type assignmentRequest struct {
	TeacherID int `json:"teacher_id" validate:"required"`
	SubjectID int `json:"subject_id" validate:"required"`
}

func GetAssignmentsAPI(c *fiber.Ctx, db *sql.DB) error {
	assignments, err := database.GetAllAssignments(db)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"assignments": assignments,
		"count":       len(assignments),
	})
}

func AddAssignmentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req assignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Teacher and subject ids are required"})
	}

	if err := database.AssignTeacherToSubject(db, req.TeacherID, req.SubjectID); err != nil {
		return err
	}

	return c.Status(201).JSON(fiber.Map{"message": "Teacher assigned to subject"})
}

func RemoveAssignmentAPI(c *fiber.Ctx, db *sql.DB) error {
	teacherID, err := c.ParamsInt("teacher_id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid teacher id"})
	}
	subjectID, err := c.ParamsInt("subject_id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid subject id"})
	}

	if err := database.UnassignTeacherFromSubject(db, teacherID, subjectID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Teacher unassigned from subject"})
}
