package models

// Grade represents a single grade for a (student, subject) pair.
// At most one grade exists per pair.
type Grade struct {
	StudentID int `json:"student_id"`
	SubjectID int `json:"subject_id"`
	Value     int `json:"value"`
}

// StudentGrade extends Grade with the subject name for display.
type StudentGrade struct {
	SubjectID   int    `json:"subject_id"`
	SubjectName string `json:"subject_name"`
	Value       int    `json:"value"`
}
