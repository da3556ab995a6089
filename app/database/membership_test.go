package database_test

import (
	"errors"
	"testing"

	"mokykla/app/database"
	"mokykla/app/testutil"
)

// Mirrors the basic onboarding flow: group, subject, curriculum entry,
// student, assignment - and the enrollment row materialized from the
// curriculum.
func TestAssignStudentToGroupMaterializesEnrollments(t *testing.T) {
	db := testutil.SetupTestDB(t)

	groupID := testutil.CreateTestGroup(t, db, "IT-21")
	subjectID := testutil.CreateTestSubject(t, db, "Matematika")
	if err := database.AssignSubjectToGroup(db, groupID, subjectID); err != nil {
		t.Fatalf("AssignSubjectToGroup failed: %v", err)
	}

	studentID := testutil.CreateTestStudent(t, db, "Jonas", "Petraitis")

	enrolled, err := database.AssignStudentToGroup(db, studentID, groupID)
	if err != nil {
		t.Fatalf("AssignStudentToGroup failed: %v", err)
	}
	if enrolled != 1 {
		t.Errorf("Expected 1 materialized enrollment, got %d", enrolled)
	}

	if n := testutil.CountRows(t, db,
		`SELECT COUNT(*) FROM students_subjects WHERE student_id = $1 AND subject_id = $2`,
		studentID, subjectID); n != 1 {
		t.Errorf("Expected enrollment row for the pair, got %d", n)
	}

	students, err := database.GetAllStudents(db)
	if err != nil {
		t.Fatalf("GetAllStudents failed: %v", err)
	}
	if students[0].GroupID == nil || *students[0].GroupID != groupID {
		t.Errorf("Expected student group reference %d, got %v", groupID, students[0].GroupID)
	}
}

func TestAssignStudentToGroupAlreadyAssigned(t *testing.T) {
	db := testutil.SetupTestDB(t)

	first := testutil.CreateTestGroup(t, db, "IT-21")
	second := testutil.CreateTestGroup(t, db, "IT-22")
	studentID := testutil.CreateTestStudent(t, db, "Jonas", "Petraitis")

	if _, err := database.AssignStudentToGroup(db, studentID, first); err != nil {
		t.Fatalf("First assign failed: %v", err)
	}

	// Same group again and a different group both fail while the first
	// membership stands.
	if _, err := database.AssignStudentToGroup(db, studentID, first); !errors.Is(err, database.ErrAlreadyExists) {
		t.Errorf("Repeat assign: expected ErrAlreadyExists, got %v", err)
	}
	if _, err := database.AssignStudentToGroup(db, studentID, second); !errors.Is(err, database.ErrAlreadyAssigned) {
		t.Errorf("Second group: expected ErrAlreadyAssigned, got %v", err)
	}

	// After removal the student can join another group.
	if _, err := database.RemoveStudentFromGroup(db, studentID, first); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := database.AssignStudentToGroup(db, studentID, second); err != nil {
		t.Errorf("Assign after removal failed: %v", err)
	}
}

func TestRemoveStudentFromGroup(t *testing.T) {
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

	removed, err := database.RemoveStudentFromGroup(db, studentID, groupID)
	if err != nil {
		t.Fatalf("RemoveStudentFromGroup failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("Expected 1 enrollment removed, got %d", removed)
	}

	if n := testutil.CountRows(t, db, `SELECT COUNT(*) FROM group_students WHERE student_id = $1`, studentID); n != 0 {
		t.Errorf("Membership row should be gone, got %d", n)
	}
	if n := testutil.CountRows(t, db, `SELECT COUNT(*) FROM students_subjects WHERE student_id = $1`, studentID); n != 0 {
		t.Errorf("Derived enrollments should be gone, got %d", n)
	}
	if n := testutil.CountRows(t, db, `SELECT COUNT(*) FROM students WHERE student_id = $1 AND group_id IS NULL`, studentID); n != 1 {
		t.Errorf("Group reference should be cleared")
	}
}

func TestRemoveStudentFromGroupNotMember(t *testing.T) {
	db := testutil.SetupTestDB(t)

	groupID := testutil.CreateTestGroup(t, db, "IT-21")
	studentID := testutil.CreateTestStudent(t, db, "Jonas", "Petraitis")

	if _, err := database.RemoveStudentFromGroup(db, studentID, groupID); !errors.Is(err, database.ErrRelationNotFound) {
		t.Errorf("Expected ErrRelationNotFound, got %v", err)
	}
	if _, err := database.RemoveStudentFromGroup(db, 42, groupID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("Missing student: expected ErrNotFound, got %v", err)
	}
	if _, err := database.RemoveStudentFromGroup(db, studentID, 42); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("Missing group: expected ErrNotFound, got %v", err)
	}
}
