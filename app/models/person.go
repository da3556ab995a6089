package models

// Student represents a student record.
type Student struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Username string `json:"username"`
	GroupID  *int   `json:"group_id,omitempty"`
}

// Teacher represents a teaching staff record.
type Teacher struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Username string `json:"username"`
}

// AuthUser is the outcome of a successful credential check.
// Administrators carry ID 0; they have no row identity of their own.
type AuthUser struct {
	ID   int  `json:"id"`
	Role Role `json:"role"`
}
