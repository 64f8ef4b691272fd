package dto

import (
	"time"

	"github.com/adeolu/campusreg/internal/app/models"
)

// BirthdayLayout is the wire format for profile birthdays
const BirthdayLayout = "2006-01-02"

// CreateStudentProfileRequest represents a student profile creation request.
// The owning account is always the authenticated caller.
type CreateStudentProfileRequest struct {
	MiddleName   string `json:"middleName" binding:"required"`
	StudentLevel string `json:"studentLevel" binding:"required"`
	Birthday     string `json:"birthday" binding:"required,datetime=2006-01-02"`
	Gender       string `json:"gender" binding:"required,oneof=M F"`
	Address      string `json:"address" binding:"required"`
	PhoneNumber  string `json:"phoneNumber" binding:"required,phone"`
	Country      string `json:"country" binding:"required"`
}

// UpdateStudentProfileRequest carries a full-field student profile update.
// Partial updates are not supported; every field must be supplied.
type UpdateStudentProfileRequest = CreateStudentProfileRequest

// CreateCouncillorProfileRequest represents a councillor profile creation request
type CreateCouncillorProfileRequest struct {
	Title             string `json:"title" binding:"required,oneof=Prof Dr Engr Mr Mrs"`
	Qualification     string `json:"qualification" binding:"required"`
	Discipline        string `json:"discipline" binding:"required"`
	YearsOfExperience string `json:"yearsOfExperience" binding:"required"`
	Birthday          string `json:"birthday" binding:"required,datetime=2006-01-02"`
	Gender            string `json:"gender" binding:"required,oneof=M F"`
	Address           string `json:"address" binding:"required"`
	PhoneNumber       string `json:"phoneNumber" binding:"required,phone"`
	Country           string `json:"country" binding:"required"`
}

// UpdateCouncillorProfileRequest carries a full-field councillor profile update
type UpdateCouncillorProfileRequest = CreateCouncillorProfileRequest

// StudentProfileResponse is a student profile with the redacted owning account embedded
type StudentProfileResponse struct {
	ID             int64        `json:"id"`
	MiddleName     string       `json:"middleName"`
	StudentLevel   string       `json:"studentLevel"`
	Birthday       string       `json:"birthday"`
	Gender         string       `json:"gender"`
	Address        string       `json:"address"`
	PhoneNumber    string       `json:"phoneNumber"`
	Country        string       `json:"country"`
	ProfilePicture *string      `json:"profilePicture,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
	User           UserResponse `json:"user"`
}

// FromStudentProfile converts a student profile model to its response view
func FromStudentProfile(p *models.StudentProfile) StudentProfileResponse {
	if p == nil {
		return StudentProfileResponse{}
	}
	return StudentProfileResponse{
		ID:             p.ID,
		MiddleName:     p.MiddleName,
		StudentLevel:   p.StudentLevel,
		Birthday:       p.Birthday.Format(BirthdayLayout),
		Gender:         string(p.Gender),
		Address:        p.Address,
		PhoneNumber:    p.PhoneNumber,
		Country:        p.Country,
		ProfilePicture: p.ProfilePicture,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		User:           FromUser(p.User),
	}
}

// CouncillorProfileResponse is a councillor profile with the redacted owning account embedded
type CouncillorProfileResponse struct {
	ID                int64        `json:"id"`
	Title             string       `json:"title"`
	Qualification     string       `json:"qualification"`
	Discipline        string       `json:"discipline"`
	YearsOfExperience string       `json:"yearsOfExperience"`
	Birthday          string       `json:"birthday"`
	Gender            string       `json:"gender"`
	Address           string       `json:"address"`
	PhoneNumber       string       `json:"phoneNumber"`
	Country           string       `json:"country"`
	ProfilePicture    *string      `json:"profilePicture,omitempty"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
	User              UserResponse `json:"user"`
}

// FromCouncillorProfile converts a councillor profile model to its response view
func FromCouncillorProfile(p *models.CouncillorProfile) CouncillorProfileResponse {
	if p == nil {
		return CouncillorProfileResponse{}
	}
	return CouncillorProfileResponse{
		ID:                p.ID,
		Title:             string(p.Title),
		Qualification:     p.Qualification,
		Discipline:        p.Discipline,
		YearsOfExperience: p.YearsOfExperience,
		Birthday:          p.Birthday.Format(BirthdayLayout),
		Gender:            string(p.Gender),
		Address:           p.Address,
		PhoneNumber:       p.PhoneNumber,
		Country:           p.Country,
		ProfilePicture:    p.ProfilePicture,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		User:              FromUser(p.User),
	}
}
