package database

import (
	"database/sql"
	"fmt"

	"mokykla/app/models"
)

// AssignTeacherToSubject links a teacher to a subject. Both endpoints
// must exist and the pair must not be linked yet.
func AssignTeacherToSubject(db *sql.DB, teacherID, subjectID int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	exists, err := teacherExists(tx, teacherID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("teacher %d: %w", teacherID, ErrNotFound)
	}

	exists, err = subjectExists(tx, subjectID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("subject %d: %w", subjectID, ErrNotFound)
	}

	exists, err = rowExists(tx, `SELECT 1 FROM teacher_subjects WHERE teacher_id = $1 AND subject_id = $2`, teacherID, subjectID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("teacher %d / subject %d: %w", teacherID, subjectID, ErrAlreadyExists)
	}

	if _, err := tx.Exec(`INSERT INTO teacher_subjects (teacher_id, subject_id) VALUES ($1, $2)`, teacherID, subjectID); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("teacher %d / subject %d: %w", teacherID, subjectID, ErrAlreadyExists)
		}
		return err
	}

	return tx.Commit()
}

// UnassignTeacherFromSubject removes the teacher-subject link. The
// endpoints must exist and the link must currently be present.
func UnassignTeacherFromSubject(db *sql.DB, teacherID, subjectID int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	exists, err := teacherExists(tx, teacherID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("teacher %d: %w", teacherID, ErrNotFound)
	}

	exists, err = subjectExists(tx, subjectID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("subject %d: %w", subjectID, ErrNotFound)
	}

	exists, err = rowExists(tx, `SELECT 1 FROM teacher_subjects WHERE teacher_id = $1 AND subject_id = $2`, teacherID, subjectID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("teacher %d / subject %d: %w", teacherID, subjectID, ErrRelationNotFound)
	}

	if _, err := tx.Exec(`DELETE FROM teacher_subjects WHERE teacher_id = $1 AND subject_id = $2`, teacherID, subjectID); err != nil {
		return err
	}

	return tx.Commit()
}

// AssignSubjectToGroup adds a subject to a group's curriculum. Students
// already in the group are not enrolled retroactively: enrollments are
// materialized only when a student joins the group.
func AssignSubjectToGroup(db *sql.DB, groupID, subjectID int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	exists, err := groupExists(tx, groupID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("group %d: %w", groupID, ErrNotFound)
	}

	exists, err = subjectExists(tx, subjectID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("subject %d: %w", subjectID, ErrNotFound)
	}

	exists, err = rowExists(tx, `SELECT 1 FROM group_subjects WHERE group_id = $1 AND subject_id = $2`, groupID, subjectID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("group %d / subject %d: %w", groupID, subjectID, ErrAlreadyExists)
	}

	if _, err := tx.Exec(`INSERT INTO group_subjects (group_id, subject_id) VALUES ($1, $2)`, groupID, subjectID); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("group %d / subject %d: %w", groupID, subjectID, ErrAlreadyExists)
		}
		return err
	}

	return tx.Commit()
}

// UnassignSubjectFromGroup removes a subject from a group's curriculum.
// Existing enrollments of the group's members are left untouched.
func UnassignSubjectFromGroup(db *sql.DB, groupID, subjectID int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	exists, err := groupExists(tx, groupID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("group %d: %w", groupID, ErrNotFound)
	}

	exists, err = subjectExists(tx, subjectID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("subject %d: %w", subjectID, ErrNotFound)
	}

	exists, err = rowExists(tx, `SELECT 1 FROM group_subjects WHERE group_id = $1 AND subject_id = $2`, groupID, subjectID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("group %d / subject %d: %w", groupID, subjectID, ErrRelationNotFound)
	}

	if _, err := tx.Exec(`DELETE FROM group_subjects WHERE group_id = $1 AND subject_id = $2`, groupID, subjectID); err != nil {
		return err
	}

	return tx.Commit()
}

// GetAllAssignments retrieves every teacher-subject link with display names.
func GetAllAssignments(db *sql.DB) ([]models.TeachingAssignment, error) {
	query := `
		SELECT ts.teacher_id, t.name || ' ' || t.surname, ts.subject_id, s.subject_name
		FROM teacher_subjects ts
		JOIN teachers t ON t.teacher_id = ts.teacher_id
		JOIN subjects s ON s.subject_id = ts.subject_id
		ORDER BY ts.teacher_id, ts.subject_id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []models.TeachingAssignment
	for rows.Next() {
		var a models.TeachingAssignment
		if err := rows.Scan(&a.TeacherID, &a.TeacherName, &a.SubjectID, &a.SubjectName); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// GetAllCurricula retrieves every group-subject link with display names.
func GetAllCurricula(db *sql.DB) ([]models.CurriculumEntry, error) {
	query := `
		SELECT gs.group_id, g.group_name, gs.subject_id, s.subject_name
		FROM group_subjects gs
		JOIN stud_groups g ON g.group_id = gs.group_id
		JOIN subjects s ON s.subject_id = gs.subject_id
		ORDER BY gs.group_id, gs.subject_id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.CurriculumEntry
	for rows.Next() {
		var e models.CurriculumEntry
		if err := rows.Scan(&e.GroupID, &e.GroupName, &e.SubjectID, &e.SubjectName); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
