package database

import (
	"database/sql"
	"fmt"

	"mokykla/app/models"
)

// CreateSubject adds a subject and returns the new id. The name is a
// soft-unique key: the engine rejects a duplicate before inserting.
func CreateSubject(db *sql.DB, name string) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	exists, err := rowExists(tx, `SELECT 1 FROM subjects WHERE subject_name = $1`, name)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, fmt.Errorf("subject %q: %w", name, ErrDuplicateName)
	}

	var id int
	err = tx.QueryRow(`INSERT INTO subjects (subject_name) VALUES ($1) RETURNING subject_id`, name).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, tx.Commit()
}

// DeleteSubject removes a subject and every row that references it:
// grades, curriculum entries, enrollments, teaching assignments, then
// the subject row itself.
func DeleteSubject(db *sql.DB, id int) (models.CascadeSummary, error) {
	var sum models.CascadeSummary

	tx, err := db.Begin()
	if err != nil {
		return sum, err
	}
	defer tx.Rollback()

	exists, err := subjectExists(tx, id)
	if err != nil {
		return sum, err
	}
	if !exists {
		return sum, fmt.Errorf("subject %d: %w", id, ErrNotFound)
	}

	res, err := tx.Exec(`DELETE FROM grades WHERE subject_id = $1`, id)
	if err != nil {
		return sum, err
	}
	sum.Grades, _ = res.RowsAffected()

	res, err = tx.Exec(`DELETE FROM group_subjects WHERE subject_id = $1`, id)
	if err != nil {
		return sum, err
	}
	sum.Curricula, _ = res.RowsAffected()

	res, err = tx.Exec(`DELETE FROM students_subjects WHERE subject_id = $1`, id)
	if err != nil {
		return sum, err
	}
	sum.Enrollments, _ = res.RowsAffected()

	res, err = tx.Exec(`DELETE FROM teacher_subjects WHERE subject_id = $1`, id)
	if err != nil {
		return sum, err
	}
	sum.Assignments, _ = res.RowsAffected()

	if _, err := tx.Exec(`DELETE FROM subjects WHERE subject_id = $1`, id); err != nil {
		return sum, err
	}

	return sum, tx.Commit()
}

// GetAllSubjects retrieves all subjects ordered by id.
func GetAllSubjects(db *sql.DB) ([]models.Subject, error) {
	rows, err := db.Query(`SELECT subject_id, subject_name FROM subjects ORDER BY subject_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []models.Subject
	for rows.Next() {
		var s models.Subject
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}
