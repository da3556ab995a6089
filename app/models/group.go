package models

// Group represents a student cohort.
type Group struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
