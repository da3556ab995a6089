package database

import (
	"database/sql"
	"fmt"

	"mokykla/app/models"
)

// AssignStudentToGroup puts a student into a group and returns how many
// enrollments were materialized from the group's curriculum. A student
// can belong to at most one group at a time.
//
// The enrollment rows are copied once, here; later changes to the
// group's curriculum do not touch the enrollments of students already
// in the group.
func AssignStudentToGroup(db *sql.DB, studentID, groupID int) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	exists, err := groupExists(tx, groupID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("group %d: %w", groupID, ErrNotFound)
	}

	exists, err = studentExists(tx, studentID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("student %d: %w", studentID, ErrNotFound)
	}

	exists, err = rowExists(tx, `SELECT 1 FROM group_students WHERE group_id = $1 AND student_id = $2`, groupID, studentID)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, fmt.Errorf("group %d / student %d: %w", groupID, studentID, ErrAlreadyExists)
	}

	var currentGroup sql.NullInt64
	if err := tx.QueryRow(`SELECT group_id FROM students WHERE student_id = $1`, studentID).Scan(&currentGroup); err != nil {
		return 0, err
	}
	if currentGroup.Valid {
		return 0, fmt.Errorf("student %d is in group %d: %w", studentID, currentGroup.Int64, ErrAlreadyAssigned)
	}

	if _, err := tx.Exec(`INSERT INTO group_students (group_id, student_id) VALUES ($1, $2)`, groupID, studentID); err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("group %d / student %d: %w", groupID, studentID, ErrAlreadyAssigned)
		}
		return 0, err
	}

	if _, err := tx.Exec(`UPDATE students SET group_id = $1 WHERE student_id = $2`, groupID, studentID); err != nil {
		return 0, err
	}

	res, err := tx.Exec(
		`INSERT INTO students_subjects (student_id, subject_id)
		 SELECT $1, subject_id FROM group_subjects WHERE group_id = $2`,
		studentID, groupID,
	)
	if err != nil {
		return 0, err
	}
	enrolled, _ := res.RowsAffected()

	return enrolled, tx.Commit()
}

// RemoveStudentFromGroup takes a student out of a group. The link row
// goes first, then the enrollments that came from the group's
// curriculum, and the student's group reference is cleared last - the
// enrollment delete filters through group_subjects by the group id, so
// the reference must still be intact when it runs.
func RemoveStudentFromGroup(db *sql.DB, studentID, groupID int) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	exists, err := groupExists(tx, groupID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("group %d: %w", groupID, ErrNotFound)
	}

	exists, err = studentExists(tx, studentID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("student %d: %w", studentID, ErrNotFound)
	}

	exists, err = rowExists(tx, `SELECT 1 FROM group_students WHERE group_id = $1 AND student_id = $2`, groupID, studentID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("group %d / student %d: %w", groupID, studentID, ErrRelationNotFound)
	}

	if _, err := tx.Exec(`DELETE FROM group_students WHERE group_id = $1 AND student_id = $2`, groupID, studentID); err != nil {
		return 0, err
	}

	res, err := tx.Exec(
		`DELETE FROM students_subjects
		 WHERE student_id = $1 AND subject_id IN
		       (SELECT subject_id FROM group_subjects WHERE group_id = $2)`,
		studentID, groupID,
	)
	if err != nil {
		return 0, err
	}
	removed, _ := res.RowsAffected()

	if _, err := tx.Exec(`UPDATE students SET group_id = NULL WHERE student_id = $1`, studentID); err != nil {
		return 0, err
	}

	return removed, tx.Commit()
}

// GetAllMemberships retrieves every group-student link with display names.
func GetAllMemberships(db *sql.DB) ([]models.GroupMembership, error) {
	query := `
		SELECT gs.group_id, g.group_name, gs.student_id, s.name || ' ' || s.surname
		FROM group_students gs
		JOIN stud_groups g ON g.group_id = gs.group_id
		JOIN students s ON s.student_id = gs.student_id
		ORDER BY gs.group_id, gs.student_id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memberships []models.GroupMembership
	for rows.Next() {
		var m models.GroupMembership
		if err := rows.Scan(&m.GroupID, &m.GroupName, &m.StudentID, &m.StudentName); err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}
	return memberships, rows.Err()
}
