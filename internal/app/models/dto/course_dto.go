package dto

import (
	"time"

	"github.com/adeolu/campusreg/internal/app/models"
)

// CreateCourseRequest represents a catalog entry creation request
type CreateCourseRequest struct {
	Semester      string  `json:"semester" binding:"required,oneof=First Second"`
	CourseCode    string  `json:"courseCode" binding:"required"`
	CourseName    string  `json:"courseName" binding:"required"`
	CourseType    string  `json:"courseType" binding:"required,oneof=Core Elective"`
	CourseUnit    float64 `json:"courseUnit" binding:"required,gt=0"`
	MinimumCredit int     `json:"minimumCredit" binding:"required,min=1"`
	MaximumCredit int     `json:"maximumCredit" binding:"required,min=1"`
}

// RegisterForCourseRequest binds the authenticated caller to a course
type RegisterForCourseRequest struct {
	CourseID int64 `json:"courseId" binding:"required,min=1"`
}

// RegistrationResponse is a ledger entry with the redacted account and the
// course detail embedded
type RegistrationResponse struct {
	ID        int64         `json:"id"`
	CreatedAt time.Time     `json:"createdAt"`
	User      UserResponse  `json:"user"`
	Course    models.Course `json:"course"`
}

// FromRegistration converts a ledger entry model to its response view
func FromRegistration(r *models.CourseRegistration) RegistrationResponse {
	if r == nil {
		return RegistrationResponse{}
	}
	resp := RegistrationResponse{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		User:      FromUser(r.User),
	}
	if r.Course != nil {
		resp.Course = *r.Course
	}
	return resp
}
