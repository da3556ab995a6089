package database

import (
	"database/sql"
	"fmt"

	"mokykla/app/models"
)

// CreateGroup adds a student group and returns the new id. The name is
// soft-unique, same policy as subjects.
func CreateGroup(db *sql.DB, name string) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	exists, err := rowExists(tx, `SELECT 1 FROM stud_groups WHERE group_name = $1`, name)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, fmt.Errorf("group %q: %w", name, ErrDuplicateName)
	}

	var id int
	err = tx.QueryRow(`INSERT INTO stud_groups (group_name) VALUES ($1) RETURNING group_id`, name).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, tx.Commit()
}

// DeleteGroup removes a group. Students that belonged to it keep their
// rows but lose the group reference; the group's curriculum and
// membership link rows are removed before the group row itself.
func DeleteGroup(db *sql.DB, id int) (models.CascadeSummary, error) {
	var sum models.CascadeSummary

	tx, err := db.Begin()
	if err != nil {
		return sum, err
	}
	defer tx.Rollback()

	exists, err := groupExists(tx, id)
	if err != nil {
		return sum, err
	}
	if !exists {
		return sum, fmt.Errorf("group %d: %w", id, ErrNotFound)
	}

	if _, err := tx.Exec(`UPDATE students SET group_id = NULL WHERE group_id = $1`, id); err != nil {
		return sum, err
	}

	res, err := tx.Exec(`DELETE FROM group_subjects WHERE group_id = $1`, id)
	if err != nil {
		return sum, err
	}
	sum.Curricula, _ = res.RowsAffected()

	res, err = tx.Exec(`DELETE FROM group_students WHERE group_id = $1`, id)
	if err != nil {
		return sum, err
	}
	sum.Memberships, _ = res.RowsAffected()

	if _, err := tx.Exec(`DELETE FROM stud_groups WHERE group_id = $1`, id); err != nil {
		return sum, err
	}

	return sum, tx.Commit()
}

// GetAllGroups retrieves all groups ordered by id.
func GetAllGroups(db *sql.DB) ([]models.Group, error) {
	rows, err := db.Query(`SELECT group_id, group_name FROM stud_groups ORDER BY group_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}
