package models

import (
	"time"
)

// StudentProfile defines the student profile model based on the 'student_profiles' table.
// Exactly one profile exists per account, enforced by a unique constraint on user_id.
type StudentProfile struct {
	ID             int64     `json:"id" db:"id"`
	UserID         int64     `json:"userId" db:"user_id"`
	MiddleName     string    `json:"middleName" db:"middle_name"`
	StudentLevel   string    `json:"studentLevel" db:"student_level"`
	Birthday       time.Time `json:"birthday" db:"birthday"`
	Gender         Gender    `json:"gender" db:"gender"`
	Address        string    `json:"address" db:"address"`
	PhoneNumber    string    `json:"phoneNumber" db:"phone_number"`
	Country        string    `json:"country" db:"country"`
	ProfilePicture *string   `json:"profilePicture,omitempty" db:"profile_picture"` // Nullable storage path
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`

	User *User `json:"user,omitempty"` // Relation, no db tag
}

// CouncillorProfile defines the councillor profile model based on the 'councillor_profiles' table
type CouncillorProfile struct {
	ID                int64           `json:"id" db:"id"`
	UserID            int64           `json:"userId" db:"user_id"`
	Title             CouncillorTitle `json:"title" db:"title"`
	Qualification     string          `json:"qualification" db:"qualification"`
	Discipline        string          `json:"discipline" db:"discipline"`
	YearsOfExperience string          `json:"yearsOfExperience" db:"years_of_experience"`
	Birthday          time.Time       `json:"birthday" db:"birthday"`
	Gender            Gender          `json:"gender" db:"gender"`
	Address           string          `json:"address" db:"address"`
	PhoneNumber       string          `json:"phoneNumber" db:"phone_number"`
	Country           string          `json:"country" db:"country"`
	ProfilePicture    *string         `json:"profilePicture,omitempty" db:"profile_picture"`
	CreatedAt         time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time       `json:"updatedAt" db:"updated_at"`

	User *User `json:"user,omitempty"` // Relation, no db tag
}
