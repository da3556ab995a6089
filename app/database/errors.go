package database

import (
	"errors"

	"github.com/lib/pq"
)

// Validation outcomes the engine returns to its callers. They are
// expected results of user input, distinct from store failures: any
// error that does not match one of these sentinels is a store-level
// problem and the operation may have been left partially applied.
var (
	ErrNotFound         = errors.New("record not found")
	ErrRelationNotFound = errors.New("relation not found")
	ErrAlreadyExists    = errors.New("relation already exists")
	ErrAlreadyAssigned  = errors.New("student already assigned to a group")
	ErrNotEnrolled      = errors.New("student not enrolled in subject")
	ErrAlreadyGraded    = errors.New("grade already recorded")
	ErrNoGrade          = errors.New("no grade recorded")
	ErrUnchanged        = errors.New("grade value unchanged")
	ErrDuplicateName    = errors.New("name already in use")
	ErrDuplicatePerson  = errors.New("person already exists")
)

// isUniqueViolation reports whether err is a unique-constraint violation
// raised by the store. The pre-checks inside each protocol cannot fully
// prevent two concurrent requests from both passing, so the constraint
// is treated as the authoritative duplicate signal.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
