package models

// DashboardStats holds the entity counts shown on the overview.
type DashboardStats struct {
	TotalStudents    int `json:"total_students"`
	TotalTeachers    int `json:"total_teachers"`
	TotalSubjects    int `json:"total_subjects"`
	TotalGroups      int `json:"total_groups"`
	TotalEnrollments int `json:"total_enrollments"`
	TotalGrades      int `json:"total_grades"`
}
