package database

import (
	"database/sql"
	"fmt"

	"mokykla/app/models"
)

// AddGrade records a grade for a (student, subject) pair. The student
// must exist, must be enrolled in the subject, and must not have a
// grade for it yet.
func AddGrade(db *sql.DB, studentID, subjectID, value int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := checkGradeTarget(tx, studentID, subjectID); err != nil {
		return err
	}

	exists, err := rowExists(tx, `SELECT 1 FROM grades WHERE student_id = $1 AND subject_id = $2`, studentID, subjectID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("student %d / subject %d: %w", studentID, subjectID, ErrAlreadyGraded)
	}

	if _, err := tx.Exec(`INSERT INTO grades (student_id, subject_id, grade) VALUES ($1, $2, $3)`, studentID, subjectID, value); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("student %d / subject %d: %w", studentID, subjectID, ErrAlreadyGraded)
		}
		return err
	}

	return tx.Commit()
}

// UpdateGrade replaces an existing grade. The new value must differ
// from the current one: a no-op update is rejected, not accepted.
func UpdateGrade(db *sql.DB, studentID, subjectID, value int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := checkGradeTarget(tx, studentID, subjectID); err != nil {
		return err
	}

	var current int
	err = tx.QueryRow(`SELECT grade FROM grades WHERE student_id = $1 AND subject_id = $2`, studentID, subjectID).Scan(&current)
	if err == sql.ErrNoRows {
		return fmt.Errorf("student %d / subject %d: %w", studentID, subjectID, ErrNoGrade)
	}
	if err != nil {
		return err
	}
	if current == value {
		return fmt.Errorf("student %d / subject %d: %w", studentID, subjectID, ErrUnchanged)
	}

	if _, err := tx.Exec(`UPDATE grades SET grade = $1 WHERE student_id = $2 AND subject_id = $3`, value, studentID, subjectID); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteGrade removes the grade for a (student, subject) pair.
func DeleteGrade(db *sql.DB, studentID, subjectID int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := checkGradeTarget(tx, studentID, subjectID); err != nil {
		return err
	}

	exists, err := rowExists(tx, `SELECT 1 FROM grades WHERE student_id = $1 AND subject_id = $2`, studentID, subjectID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("student %d / subject %d: %w", studentID, subjectID, ErrNoGrade)
	}

	if _, err := tx.Exec(`DELETE FROM grades WHERE student_id = $1 AND subject_id = $2`, studentID, subjectID); err != nil {
		return err
	}

	return tx.Commit()
}

// CurrentGrade returns the grade for a (student, subject) pair. The
// second result is false when no grade is recorded.
func CurrentGrade(db *sql.DB, studentID, subjectID int) (int, bool, error) {
	var value int
	err := db.QueryRow(`SELECT grade FROM grades WHERE student_id = $1 AND subject_id = $2`, studentID, subjectID).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return value, true, nil
}

// GetStudentGrades retrieves a student's grades with subject names.
func GetStudentGrades(db *sql.DB, studentID int) ([]models.StudentGrade, error) {
	exists, err := studentExists(db, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("student %d: %w", studentID, ErrNotFound)
	}

	query := `
		SELECT g.subject_id, s.subject_name, g.grade
		FROM grades g
		JOIN subjects s ON s.subject_id = g.subject_id
		WHERE g.student_id = $1
		ORDER BY g.subject_id`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []models.StudentGrade
	for rows.Next() {
		var g models.StudentGrade
		if err := rows.Scan(&g.SubjectID, &g.SubjectName, &g.Value); err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}

// checkGradeTarget runs the shared grade preconditions in order:
// the student must exist, then an enrollment for the pair must exist.
func checkGradeTarget(q querier, studentID, subjectID int) error {
	exists, err := studentExists(q, studentID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("student %d: %w", studentID, ErrNotFound)
	}

	exists, err = rowExists(q, `SELECT 1 FROM students_subjects WHERE student_id = $1 AND subject_id = $2`, studentID, subjectID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("student %d / subject %d: %w", studentID, subjectID, ErrNotEnrolled)
	}

	return nil
}
