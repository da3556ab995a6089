package grades_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"mokykla/app/database"
	"mokykla/app/models"
	"mokykla/app/routes/auth"
	"mokykla/app/routes/grades"
	"mokykla/app/testutil"
)

func TestGetGradeAPI(t *testing.T) {
	db := testutil.SetupTestDB(t)

	groupID := testutil.CreateTestGroup(t, db, "IT-21")
	subjectID := testutil.CreateTestSubject(t, db, "Matematika")
	if err := database.AssignSubjectToGroup(db, groupID, subjectID); err != nil {
		t.Fatalf("AssignSubjectToGroup failed: %v", err)
	}
	studentID := testutil.CreateTestStudent(t, db, "Jonas", "Petraitis")
	if _, err := database.AssignStudentToGroup(db, studentID, groupID); err != nil {
		t.Fatalf("AssignStudentToGroup failed: %v", err)
	}
	if err := database.AddGrade(db, studentID, subjectID, 9); err != nil {
		t.Fatalf("AddGrade failed: %v", err)
	}

	app := fiber.New()
	grades.SetupGradesRoutes(app, db)

	token, err := auth.GenerateJWT(&models.AuthUser{ID: studentID, Role: models.RoleStudent})
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	path := fmt.Sprintf("/api/grades/%d/%d", studentID, subjectID)
	req, _ := http.NewRequest("GET", path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var grade models.Grade
	if err := json.NewDecoder(resp.Body).Decode(&grade); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if grade.StudentID != studentID || grade.SubjectID != subjectID || grade.Value != 9 {
		t.Errorf("Unexpected grade payload: %+v", grade)
	}

	// No grade for an unknown pair.
	req, _ = http.NewRequest("GET", fmt.Sprintf("/api/grades/%d/%d", studentID, subjectID+1), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("Expected 404, got %d", resp.StatusCode)
	}
}
