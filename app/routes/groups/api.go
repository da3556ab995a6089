package groups

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mokykla/app/database"
)

var validate = validator.New()

type createGroupRequest struct {
	Name string `json:"name" validate:"required"`
}

type curriculumRequest struct {
	GroupID   int `json:"group_id" validate:"required"`
	SubjectID int `json:"subject_id" validate:"required"`
}

type membershipRequest struct {
	GroupID   int `json:"group_id" validate:"required"`
	StudentID int `json:"student_id" validate:"required"`
}

func GetGroupsAPI(c *fiber.Ctx, db *sql.DB) error {
	groups, err := database.GetAllGroups(db)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"groups": groups,
		"count":  len(groups),
	})
}

func CreateGroupAPI(c *fiber.Ctx, db *sql.DB) error {
	var req createGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Name is required"})
	}

	id, err := database.CreateGroup(db, req.Name)
	if err != nil {
		return err
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Group created successfully",
		"id":      id,
	})
}

func DeleteGroupAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid group id"})
	}

	summary, err := database.DeleteGroup(db, id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Group deleted successfully",
		"removed": summary,
	})
}

func GetCurriculaAPI(c *fiber.Ctx, db *sql.DB) error {
	entries, err := database.GetAllCurricula(db)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"curricula": entries,
		"count":     len(entries),
	})
}

func AddCurriculumAPI(c *fiber.Ctx, db *sql.DB) error {
	var req curriculumRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Group and subject ids are required"})
	}

	if err := database.AssignSubjectToGroup(db, req.GroupID, req.SubjectID); err != nil {
		return err
	}

	return c.Status(201).JSON(fiber.Map{"message": "Subject added to group curriculum"})
}

func RemoveCurriculumAPI(c *fiber.Ctx, db *sql.DB) error {
	groupID, err := c.ParamsInt("group_id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid group id"})
	}
	subjectID, err := c.ParamsInt("subject_id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid subject id"})
	}

	if err := database.UnassignSubjectFromGroup(db, groupID, subjectID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Subject removed from group curriculum"})
}

func GetMembershipsAPI(c *fiber.Ctx, db *sql.DB) error {
	memberships, err := database.GetAllMemberships(db)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"memberships": memberships,
		"count":       len(memberships),
	})
}

func AddMembershipAPI(c *fiber.Ctx, db *sql.DB) error {
	var req membershipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Group and student ids are required"})
	}

	enrolled, err := database.AssignStudentToGroup(db, req.StudentID, req.GroupID)
	if err != nil {
		return err
	}

	return c.Status(201).JSON(fiber.Map{
		"message":  "Student assigned to group",
		"enrolled": enrolled,
	})
}

func RemoveMembershipAPI(c *fiber.Ctx, db *sql.DB) error {
	groupID, err := c.ParamsInt("group_id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid group id"})
	}
	studentID, err := c.ParamsInt("student_id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student id"})
	}

	removed, err := database.RemoveStudentFromGroup(db, studentID, groupID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":    "Student removed from group",
		"unenrolled": removed,
	})
}
