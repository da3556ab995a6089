package database

import (
	"database/sql"
	"fmt"

	"mokykla/app/models"
)

// CreateStudent adds a student and returns the new id. The username is
// derived from the name and the initial password is the surname, stored
// hashed. A person with the same name and surname in either person
// table is rejected.
func CreateStudent(db *sql.DB, name, surname string) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	exists, err := rowExists(tx, `SELECT 1 FROM students WHERE name = $1 AND surname = $2`, name, surname)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, fmt.Errorf("student %s %s: %w", name, surname, ErrDuplicatePerson)
	}

	exists, err = rowExists(tx, `SELECT 1 FROM teachers WHERE name = $1 AND surname = $2`, name, surname)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, fmt.Errorf("teacher %s %s: %w", name, surname, ErrDuplicatePerson)
	}

	hash, err := hashPassword(surname)
	if err != nil {
		return 0, err
	}

	var id int
	err = tx.QueryRow(
		`INSERT INTO students (name, surname, username, password) VALUES ($1, $2, $3, $4) RETURNING student_id`,
		name, surname, deriveUsername(name), hash,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, tx.Commit()
}

// DeleteStudent removes a student together with every row that
// references it: group membership, enrollments, grades, then the
// student row itself. Zero matched dependent rows is not an error.
func DeleteStudent(db *sql.DB, id int) (models.CascadeSummary, error) {
	var sum models.CascadeSummary

	tx, err := db.Begin()
	if err != nil {
		return sum, err
	}
	defer tx.Rollback()

	exists, err := studentExists(tx, id)
	if err != nil {
		return sum, err
	}
	if !exists {
		return sum, fmt.Errorf("student %d: %w", id, ErrNotFound)
	}

	res, err := tx.Exec(`DELETE FROM group_students WHERE student_id = $1`, id)
	if err != nil {
		return sum, err
	}
	sum.Memberships, _ = res.RowsAffected()

	res, err = tx.Exec(`DELETE FROM students_subjects WHERE student_id = $1`, id)
	if err != nil {
		return sum, err
	}
	sum.Enrollments, _ = res.RowsAffected()

	res, err = tx.Exec(`DELETE FROM grades WHERE student_id = $1`, id)
	if err != nil {
		return sum, err
	}
	sum.Grades, _ = res.RowsAffected()

	if _, err := tx.Exec(`DELETE FROM students WHERE student_id = $1`, id); err != nil {
		return sum, err
	}

	return sum, tx.Commit()
}

// GetAllStudents retrieves all students ordered by id.
func GetAllStudents(db *sql.DB) ([]models.Student, error) {
	rows, err := db.Query(`SELECT student_id, name, surname, username, group_id FROM students ORDER BY student_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var s models.Student
		var groupID sql.NullInt64
		if err := rows.Scan(&s.ID, &s.Name, &s.Surname, &s.Username, &groupID); err != nil {
			return nil, err
		}
		if groupID.Valid {
			g := int(groupID.Int64)
			s.GroupID = &g
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
