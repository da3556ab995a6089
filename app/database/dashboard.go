package database

import (
	"database/sql"

	"mokykla/app/models"
)

// GetStats collects the entity counts for the dashboard overview.
func GetStats(db *sql.DB) (models.DashboardStats, error) {
	var stats models.DashboardStats

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM students`, &stats.TotalStudents},
		{`SELECT COUNT(*) FROM teachers`, &stats.TotalTeachers},
		{`SELECT COUNT(*) FROM subjects`, &stats.TotalSubjects},
		{`SELECT COUNT(*) FROM stud_groups`, &stats.TotalGroups},
		{`SELECT COUNT(*) FROM students_subjects`, &stats.TotalEnrollments},
		{`SELECT COUNT(*) FROM grades`, &stats.TotalGrades},
	}

	for _, c := range counts {
		if err := db.QueryRow(c.query).Scan(c.dest); err != nil {
			return stats, err
		}
	}

	return stats, nil
}
