package database

import (
	"database/sql"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// querier is satisfied by both *sql.DB and *sql.Tx so the existence
// checks can run inside or outside a transaction.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
	Query(query string, args ...any) (*sql.Rows, error)
	Exec(query string, args ...any) (sql.Result, error)
}

// rowExists runs a SELECT expected to return at most one row and
// reports whether it returned anything. No row is not an error.
func rowExists(q querier, query string, args ...any) (bool, error) {
	var one int
	err := q.QueryRow(query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func studentExists(q querier, id int) (bool, error) {
	return rowExists(q, `SELECT 1 FROM students WHERE student_id = $1`, id)
}

func teacherExists(q querier, id int) (bool, error) {
	return rowExists(q, `SELECT 1 FROM teachers WHERE teacher_id = $1`, id)
}

func subjectExists(q querier, id int) (bool, error) {
	return rowExists(q, `SELECT 1 FROM subjects WHERE subject_id = $1`, id)
}

func groupExists(q querier, id int) (bool, error) {
	return rowExists(q, `SELECT 1 FROM stud_groups WHERE group_id = $1`, id)
}

// deriveUsername builds the account name from the person's first name:
// the first letter lowercased, the rest kept as-is.
func deriveUsername(name string) string {
	r := []rune(name)
	if len(r) == 0 {
		return ""
	}
	return strings.ToLower(string(r[0])) + string(r[1:])
}

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
