package models

import (
	"time"
)

// User defines the account model based on the 'users' table
type User struct {
	ID                 int64      `json:"id" db:"id" example:"1"`                                   // Unique identifier for the account
	Username           string     `json:"username" db:"username" example:"adaobi1"`                 // Unique alphanumeric username
	Email              string     `json:"email" db:"email" example:"adaobi@school.edu.ng"`          // Unique email address
	Password           string     `json:"-" db:"password"`                                          // Hashed password (excluded from JSON)
	FirstName          string     `json:"firstName" db:"first_name" example:"Adaobi"`               // First name
	LastName           string     `json:"lastName" db:"last_name" example:"Okafor"`                 // Last name
	RegistrationNumber string     `json:"registrationNumber" db:"registration_number"`              // Free-text registration number
	Role               RoleType   `json:"role" db:"role" example:"STUDENT"`                         // Account role (STUDENT or COURSE_ADVISER)
	IsActive           bool       `json:"isActive" db:"is_active" example:"true"`                   // Whether the account is active
	IsVerified         bool       `json:"isVerified" db:"is_verified" example:"false"`              // Whether the account passed verification
	IsSuperuser        bool       `json:"isSuperuser" db:"is_superuser" example:"false"`            // Whether the account has admin rights
	CreatedAt          time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the account was created
	UpdatedAt          time.Time  `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp of the last update
	LastLoginAt        *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`                 // Timestamp of the last login (nullable)
}
