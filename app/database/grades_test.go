package database_test

import (
	"database/sql"
	"errors"
	"testing"

	"mokykla/app/database"
	"mokykla/app/testutil"
)

// setupEnrollment builds the minimum state a grade needs: a group with
// the subject in its curriculum and a student assigned to the group.
func setupEnrollment(t *testing.T, db *sql.DB) (studentID, subjectID int) {
	t.Helper()

	groupID := testutil.CreateTestGroup(t, db, "IT-21")
	subjectID = testutil.CreateTestSubject(t, db, "Matematika")
	if err := database.AssignSubjectToGroup(db, groupID, subjectID); err != nil {
		t.Fatalf("AssignSubjectToGroup failed: %v", err)
	}

	studentID = testutil.CreateTestStudent(t, db, "Jonas", "Petraitis")
	if _, err := database.AssignStudentToGroup(db, studentID, groupID); err != nil {
		t.Fatalf("AssignStudentToGroup failed: %v", err)
	}
	return studentID, subjectID
}

func TestGradeLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	studentID, subjectID := setupEnrollment(t, db)

	if err := database.AddGrade(db, studentID, subjectID, 9); err != nil {
		t.Fatalf("AddGrade failed: %v", err)
	}
	if err := database.AddGrade(db, studentID, subjectID, 9); !errors.Is(err, database.ErrAlreadyGraded) {
		t.Errorf("Second add: expected ErrAlreadyGraded, got %v", err)
	}

	if err := database.UpdateGrade(db, studentID, subjectID, 9); !errors.Is(err, database.ErrUnchanged) {
		t.Errorf("Same value: expected ErrUnchanged, got %v", err)
	}
	if err := database.UpdateGrade(db, studentID, subjectID, 10); err != nil {
		t.Fatalf("UpdateGrade failed: %v", err)
	}

	value, ok, err := database.CurrentGrade(db, studentID, subjectID)
	if err != nil {
		t.Fatalf("CurrentGrade failed: %v", err)
	}
	if !ok || value != 10 {
		t.Errorf("Expected current grade 10, got %d (ok=%v)", value, ok)
	}

	if err := database.DeleteGrade(db, studentID, subjectID); err != nil {
		t.Fatalf("DeleteGrade failed: %v", err)
	}
	if err := database.UpdateGrade(db, studentID, subjectID, 10); !errors.Is(err, database.ErrNoGrade) {
		t.Errorf("Update after delete: expected ErrNoGrade, got %v", err)
	}
	if err := database.DeleteGrade(db, studentID, subjectID); !errors.Is(err, database.ErrNoGrade) {
		t.Errorf("Second delete: expected ErrNoGrade, got %v", err)
	}

	if _, ok, _ := database.CurrentGrade(db, studentID, subjectID); ok {
		t.Errorf("Expected no current grade after delete")
	}
}

func TestAddGradeRequiresEnrollment(t *testing.T) {
	db := testutil.SetupTestDB(t)

	studentID := testutil.CreateTestStudent(t, db, "Jonas", "Petraitis")
	subjectID := testutil.CreateTestSubject(t, db, "Matematika")

	if err := database.AddGrade(db, studentID, subjectID, 9); !errors.Is(err, database.ErrNotEnrolled) {
		t.Errorf("Expected ErrNotEnrolled, got %v", err)
	}
	if err := database.AddGrade(db, 42, subjectID, 9); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("Missing student: expected ErrNotFound, got %v", err)
	}
}

func TestGetStudentGrades(t *testing.T) {
	db := testutil.SetupTestDB(t)
	studentID, subjectID := setupEnrollment(t, db)

	if err := database.AddGrade(db, studentID, subjectID, 8); err != nil {
		t.Fatalf("AddGrade failed: %v", err)
	}

	grades, err := database.GetStudentGrades(db, studentID)
	if err != nil {
		t.Fatalf("GetStudentGrades failed: %v", err)
	}
	if len(grades) != 1 {
		t.Fatalf("Expected 1 grade, got %d", len(grades))
	}
	if grades[0].SubjectName != "Matematika" || grades[0].Value != 8 {
		t.Errorf("Unexpected grade row: %+v", grades[0])
	}

	if _, err := database.GetStudentGrades(db, 42); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("Missing student: expected ErrNotFound, got %v", err)
	}
}
