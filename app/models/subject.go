package models

// Subject represents a taught subject.
type Subject struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
