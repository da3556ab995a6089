package database

import (
	"database/sql"
	"fmt"

	"mokykla/app/models"
)

// CreateTeacher adds a teacher and returns the new id. Credentials are
// derived the same way as for students. A person with the same name and
// surname in either person table is rejected.
func CreateTeacher(db *sql.DB, name, surname string) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	exists, err := rowExists(tx, `SELECT 1 FROM teachers WHERE name = $1 AND surname = $2`, name, surname)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, fmt.Errorf("teacher %s %s: %w", name, surname, ErrDuplicatePerson)
	}

	exists, err = rowExists(tx, `SELECT 1 FROM students WHERE name = $1 AND surname = $2`, name, surname)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, fmt.Errorf("student %s %s: %w", name, surname, ErrDuplicatePerson)
	}

	hash, err := hashPassword(surname)
	if err != nil {
		return 0, err
	}

	var id int
	err = tx.QueryRow(
		`INSERT INTO teachers (name, surname, username, password) VALUES ($1, $2, $3, $4) RETURNING teacher_id`,
		name, surname, deriveUsername(name), hash,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, tx.Commit()
}

// DeleteTeacher removes a teacher and its teaching assignments.
func DeleteTeacher(db *sql.DB, id int) (models.CascadeSummary, error) {
	var sum models.CascadeSummary

	tx, err := db.Begin()
	if err != nil {
		return sum, err
	}
	defer tx.Rollback()

	exists, err := teacherExists(tx, id)
	if err != nil {
		return sum, err
	}
	if !exists {
		return sum, fmt.Errorf("teacher %d: %w", id, ErrNotFound)
	}

	res, err := tx.Exec(`DELETE FROM teacher_subjects WHERE teacher_id = $1`, id)
	if err != nil {
		return sum, err
	}
	sum.Assignments, _ = res.RowsAffected()

	if _, err := tx.Exec(`DELETE FROM teachers WHERE teacher_id = $1`, id); err != nil {
		return sum, err
	}

	return sum, tx.Commit()
}

// GetAllTeachers retrieves all teachers ordered by id.
func GetAllTeachers(db *sql.DB) ([]models.Teacher, error) {
	rows, err := db.Query(`SELECT teacher_id, name, surname, username FROM teachers ORDER BY teacher_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []models.Teacher
	for rows.Next() {
		var t models.Teacher
		if err := rows.Scan(&t.ID, &t.Name, &t.Surname, &t.Username); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}
