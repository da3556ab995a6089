package database

import (
	"database/sql"

	"mokykla/app/models"
)

// Authenticate checks a username/password pair against the student,
// teacher and administrator tables, in that priority order, and returns
// the first match. Usernames are derived from first names, so they are
// not unique across tables or even within one; every row carrying the
// username is a candidate and the first one whose password matches
// wins. A nil result with a nil error means no table matched, which is
// a normal outcome, not a failure.
func Authenticate(db *sql.DB, username, password string) (*models.AuthUser, error) {
	id, ok, err := matchPerson(db, `SELECT student_id, password FROM students WHERE username = $1 ORDER BY student_id`, username, password)
	if err != nil {
		return nil, err
	}
	if ok {
		return &models.AuthUser{ID: id, Role: models.RoleStudent}, nil
	}

	id, ok, err = matchPerson(db, `SELECT teacher_id, password FROM teachers WHERE username = $1 ORDER BY teacher_id`, username, password)
	if err != nil {
		return nil, err
	}
	if ok {
		return &models.AuthUser{ID: id, Role: models.RoleTeacher}, nil
	}

	rows, err := db.Query(`SELECT password FROM administrator WHERE username = $1`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var hash string
		if err := rows.Scan(&hash); err != nil {
			return nil, err
		}
		if checkPasswordHash(password, hash) {
			// Administrators expose no row identity.
			return &models.AuthUser{ID: 0, Role: models.RoleAdministrator}, nil
		}
	}

	return nil, rows.Err()
}

// matchPerson compares the password against every row in one person
// table that carries the username and returns the first id whose hash
// matches.
func matchPerson(db *sql.DB, query, username, password string) (int, bool, error) {
	rows, err := db.Query(query, username)
	if err != nil {
		return 0, false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   int
			hash string
		)
		if err := rows.Scan(&id, &hash); err != nil {
			return 0, false, err
		}
		if checkPasswordHash(password, hash) {
			return id, true, nil
		}
	}
	return 0, false, rows.Err()
}

// SeedAdministrator inserts the administrator account unless one with
// the same username already exists.
func SeedAdministrator(db *sql.DB, username, password string) error {
	exists, err := rowExists(db, `SELECT 1 FROM administrator WHERE username = $1`, username)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT INTO administrator (username, password) VALUES ($1, $2)`, username, hash)
	return err
}
