package database

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed by the engine.
// Safe to call multiple times - uses IF NOT EXISTS.
//
// Referential integrity between the tables is enforced by the engine
// itself, not by the store: there are deliberately no FOREIGN KEY
// clauses. The UNIQUE constraints on the relation pairs back the
// engine's duplicate pre-checks so a race between two requests still
// cannot produce a duplicate row.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- People
CREATE TABLE IF NOT EXISTS students (
    student_id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    surname TEXT NOT NULL,
    username TEXT NOT NULL,
    password TEXT NOT NULL,
    group_id INTEGER
);

CREATE TABLE IF NOT EXISTS teachers (
    teacher_id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    surname TEXT NOT NULL,
    username TEXT NOT NULL,
    password TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS administrator (
    username TEXT NOT NULL,
    password TEXT NOT NULL
);

-- Subjects and groups
CREATE TABLE IF NOT EXISTS subjects (
    subject_id SERIAL PRIMARY KEY,
    subject_name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS stud_groups (
    group_id SERIAL PRIMARY KEY,
    group_name TEXT NOT NULL
);

-- Relations
CREATE TABLE IF NOT EXISTS teacher_subjects (
    teacher_id INTEGER NOT NULL,
    subject_id INTEGER NOT NULL,
    UNIQUE (teacher_id, subject_id)
);

CREATE TABLE IF NOT EXISTS group_subjects (
    group_id INTEGER NOT NULL,
    subject_id INTEGER NOT NULL,
    UNIQUE (group_id, subject_id)
);

CREATE TABLE IF NOT EXISTS group_students (
    group_id INTEGER NOT NULL,
    student_id INTEGER NOT NULL UNIQUE,
    UNIQUE (group_id, student_id)
);

CREATE TABLE IF NOT EXISTS students_subjects (
    student_id INTEGER NOT NULL,
    subject_id INTEGER NOT NULL
);

-- Grades
CREATE TABLE IF NOT EXISTS grades (
    student_id INTEGER NOT NULL,
    subject_id INTEGER NOT NULL,
    grade INTEGER NOT NULL,
    UNIQUE (student_id, subject_id)
);
`
