package models

import (
	"time"
)

// CourseRegistration is a ledger entry binding an account to a course.
// A (user, course) pair may appear at most once.
type CourseRegistration struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	CourseID  int64     `json:"courseId" db:"course_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	User   *User   `json:"user,omitempty"`   // Relation, no db tag
	Course *Course `json:"course,omitempty"` // Relation, no db tag
}
