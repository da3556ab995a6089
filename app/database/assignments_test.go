package database_test

import (
	"errors"
	"testing"

	"mokykla/app/database"
	"mokykla/app/testutil"
)

func TestTeacherSubjectAssignment(t *testing.T) {
	db := testutil.SetupTestDB(t)

	teacherID := testutil.CreateTestTeacher(t, db, "Ona", "Kazlauskiene")
	subjectID := testutil.CreateTestSubject(t, db, "Matematika")

	if err := database.AssignTeacherToSubject(db, teacherID, subjectID); err != nil {
		t.Fatalf("First assign failed: %v", err)
	}
	if err := database.AssignTeacherToSubject(db, teacherID, subjectID); !errors.Is(err, database.ErrAlreadyExists) {
		t.Errorf("Second assign: expected ErrAlreadyExists, got %v", err)
	}

	if err := database.UnassignTeacherFromSubject(db, teacherID, subjectID); err != nil {
		t.Fatalf("Unassign failed: %v", err)
	}
	if err := database.UnassignTeacherFromSubject(db, teacherID, subjectID); !errors.Is(err, database.ErrRelationNotFound) {
		t.Errorf("Second unassign: expected ErrRelationNotFound, got %v", err)
	}
}

func TestAssignTeacherMissingEndpoints(t *testing.T) {
	db := testutil.SetupTestDB(t)

	subjectID := testutil.CreateTestSubject(t, db, "Matematika")
	if err := database.AssignTeacherToSubject(db, 42, subjectID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("Missing teacher: expected ErrNotFound, got %v", err)
	}

	teacherID := testutil.CreateTestTeacher(t, db, "Ona", "Kazlauskiene")
	if err := database.AssignTeacherToSubject(db, teacherID, 42); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("Missing subject: expected ErrNotFound, got %v", err)
	}
}

func TestGroupSubjectCurriculum(t *testing.T) {
	db := testutil.SetupTestDB(t)

	groupID := testutil.CreateTestGroup(t, db, "IT-21")
	subjectID := testutil.CreateTestSubject(t, db, "Matematika")

	if err := database.AssignSubjectToGroup(db, groupID, subjectID); err != nil {
		t.Fatalf("First assign failed: %v", err)
	}
	if err := database.AssignSubjectToGroup(db, groupID, subjectID); !errors.Is(err, database.ErrAlreadyExists) {
		t.Errorf("Second assign: expected ErrAlreadyExists, got %v", err)
	}

	if err := database.UnassignSubjectFromGroup(db, groupID, subjectID); err != nil {
		t.Fatalf("Unassign failed: %v", err)
	}
	if err := database.UnassignSubjectFromGroup(db, groupID, subjectID); !errors.Is(err, database.ErrRelationNotFound) {
		t.Errorf("Second unassign: expected ErrRelationNotFound, got %v", err)
	}
}

func TestCurriculumEditDoesNotTouchExistingEnrollments(t *testing.T) {
	db := testutil.SetupTestDB(t)

	groupID := testutil.CreateTestGroup(t, db, "IT-21")
	mathID := testutil.CreateTestSubject(t, db, "Matematika")
	if err := database.AssignSubjectToGroup(db, groupID, mathID); err != nil {
		t.Fatalf("AssignSubjectToGroup failed: %v", err)
	}

	studentID := testutil.CreateTestStudent(t, db, "Jonas", "Petraitis")
	if _, err := database.AssignStudentToGroup(db, studentID, groupID); err != nil {
		t.Fatalf("AssignStudentToGroup failed: %v", err)
	}

	// Enrollments are a one-time copy at assignment; adding a subject
	// to the curriculum afterwards does not enroll existing members.
	progID := testutil.CreateTestSubject(t, db, "Programavimas")
	if err := database.AssignSubjectToGroup(db, groupID, progID); err != nil {
		t.Fatalf("Curriculum edit failed: %v", err)
	}

	if n := testutil.CountRows(t, db, `SELECT COUNT(*) FROM students_subjects WHERE student_id = $1`, studentID); n != 1 {
		t.Errorf("Expected enrollment set to stay at 1, got %d", n)
	}
}

func TestGetAllAssignments(t *testing.T) {
	db := testutil.SetupTestDB(t)

	teacherID := testutil.CreateTestTeacher(t, db, "Ona", "Kazlauskiene")
	subjectID := testutil.CreateTestSubject(t, db, "Matematika")
	if err := database.AssignTeacherToSubject(db, teacherID, subjectID); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}

	assignments, err := database.GetAllAssignments(db)
	if err != nil {
		t.Fatalf("GetAllAssignments failed: %v", err)
	}
	if len(assignments) != 1 {
		t.Fatalf("Expected 1 assignment, got %d", len(assignments))
	}
	if assignments[0].TeacherName != "Ona Kazlauskiene" || assignments[0].SubjectName != "Matematika" {
		t.Errorf("Unexpected display names: %+v", assignments[0])
	}
}
