package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent       RoleType = "STUDENT"
	RoleCourseAdviser RoleType = "COURSE_ADVISER"
)

// Gender values accepted on profiles
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// Semester represents the teaching semester of a course
type Semester string

const (
	SemesterFirst  Semester = "First"
	SemesterSecond Semester = "Second"
)

// CourseType distinguishes compulsory and optional courses
type CourseType string

const (
	CourseTypeCore     CourseType = "Core"
	CourseTypeElective CourseType = "Elective"
)

// CouncillorTitle is the honorific carried by councillor profiles
type CouncillorTitle string

const (
	TitleProf CouncillorTitle = "Prof"
	TitleDr   CouncillorTitle = "Dr"
	TitleEngr CouncillorTitle = "Engr"
	TitleMr   CouncillorTitle = "Mr"
	TitleMrs  CouncillorTitle = "Mrs"
)
