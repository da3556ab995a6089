package models

// TeachingAssignment links a teacher to a subject they teach.
type TeachingAssignment struct {
	TeacherID   int    `json:"teacher_id"`
	TeacherName string `json:"teacher_name"`
	SubjectID   int    `json:"subject_id"`
	SubjectName string `json:"subject_name"`
}

// CurriculumEntry links a group to a subject its members take.
type CurriculumEntry struct {
	GroupID     int    `json:"group_id"`
	GroupName   string `json:"group_name"`
	SubjectID   int    `json:"subject_id"`
	SubjectName string `json:"subject_name"`
}

// GroupMembership is the single active student-to-group link.
type GroupMembership struct {
	GroupID     int    `json:"group_id"`
	GroupName   string `json:"group_name"`
	StudentID   int    `json:"student_id"`
	StudentName string `json:"student_name"`
}

// CascadeSummary reports how many dependent rows a delete removed.
type CascadeSummary struct {
	Memberships int64 `json:"memberships"`
	Enrollments int64 `json:"enrollments"`
	Grades      int64 `json:"grades"`
	Curricula   int64 `json:"curricula"`
	Assignments int64 `json:"assignments"`
}
