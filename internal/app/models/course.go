package models

import "time"

// Course represents a catalog entry. Catalog entries are global and admin-managed;
// they carry no owner.
type Course struct {
	ID            int64      `json:"id" db:"id"`
	Semester      Semester   `json:"semester" db:"semester"`
	CourseCode    string     `json:"courseCode" db:"course_code"`
	CourseName    string     `json:"courseName" db:"course_name"`
	CourseType    CourseType `json:"courseType" db:"course_type"`
	CourseUnit    float64    `json:"courseUnit" db:"course_unit"` // One fractional digit
	MinimumCredit int        `json:"minimumCredit" db:"minimum_credit"`
	MaximumCredit int        `json:"maximumCredit" db:"maximum_credit"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}
