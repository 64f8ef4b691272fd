package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/adeolu/campusreg/internal/app/models"
	"github.com/adeolu/campusreg/internal/pkg/apperrors"
)

// In-memory stores backing the service tests.

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]*models.User{}, nextID: 1}
}

func (s *fakeUserStore) CreateUser(_ context.Context, user *models.User) (int64, error) {
	for _, u := range s.users {
		if u.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		if u.Username == user.Username {
			return 0, apperrors.ErrUsernameAlreadyExists
		}
	}
	id := s.nextID
	s.nextID++
	stored := *user
	stored.ID = id
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.users[id] = &stored
	return id, nil
}

func (s *fakeUserStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *fakeUserStore) GetAllUsers(_ context.Context) ([]*models.User, error) {
	users := []*models.User{}
	for id := int64(1); id < s.nextID; id++ {
		if user, ok := s.users[id]; ok {
			copied := *user
			users = append(users, &copied)
		}
	}
	return users, nil
}

func (s *fakeUserStore) EmailExists(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, user := range s.users {
		if user.Email == email && user.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) UsernameExists(_ context.Context, username string, excludeID int64) (bool, error) {
	for _, user := range s.users {
		if user.Username == username && user.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) UpdateAccount(_ context.Context, userID int64, username, firstName, lastName, email string) error {
	user, ok := s.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Username = username
	user.FirstName = firstName
	user.LastName = lastName
	user.Email = email
	user.UpdatedAt = time.Now()
	return nil
}

func (s *fakeUserStore) UpdatePassword(_ context.Context, userID int64, hashedPassword string) error {
	user, ok := s.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Password = hashedPassword
	return nil
}

func (s *fakeUserStore) UpdateLastLogin(_ context.Context, userID int64) error {
	user, ok := s.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	now := time.Now()
	user.LastLoginAt = &now
	return nil
}

type fakeTokenStore struct {
	tokens map[string]*models.RefreshToken
	nextID int64
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]*models.RefreshToken{}, nextID: 1}
}

func (s *fakeTokenStore) StoreRefreshToken(_ context.Context, token *models.RefreshToken) error {
	token.ID = s.nextID
	s.nextID++
	token.CreatedAt = time.Now()
	stored := *token
	s.tokens[token.Token] = &stored
	return nil
}

func (s *fakeTokenStore) GetRefreshToken(_ context.Context, tokenValue string) (*models.RefreshToken, error) {
	token, ok := s.tokens[tokenValue]
	if !ok {
		return nil, apperrors.ErrTokenNotFound
	}
	copied := *token
	return &copied, nil
}

func (s *fakeTokenStore) RevokeRefreshToken(_ context.Context, tokenValue string) error {
	token, ok := s.tokens[tokenValue]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	token.IsRevoked = true
	return nil
}

func (s *fakeTokenStore) RevokeUserRefreshTokens(_ context.Context, userID int64) error {
	for _, token := range s.tokens {
		if token.UserID == userID {
			token.IsRevoked = true
		}
	}
	return nil
}

type fakeProfileStore struct {
	students    map[int64]*models.StudentProfile
	councillors map[int64]*models.CouncillorProfile
	users       *fakeUserStore
	nextID      int64
}

func newFakeProfileStore(users *fakeUserStore) *fakeProfileStore {
	return &fakeProfileStore{
		students:    map[int64]*models.StudentProfile{},
		councillors: map[int64]*models.CouncillorProfile{},
		users:       users,
		nextID:      1,
	}
}

func (s *fakeProfileStore) ownerOf(userID int64) *models.User {
	if s.users == nil {
		return &models.User{ID: userID}
	}
	if user, ok := s.users.users[userID]; ok {
		copied := *user
		return &copied
	}
	return &models.User{ID: userID}
}

func (s *fakeProfileStore) CreateStudentProfile(_ context.Context, profile *models.StudentProfile) (int64, error) {
	for _, p := range s.students {
		if p.UserID == profile.UserID {
			return 0, apperrors.ErrProfileAlreadyExists
		}
	}
	id := s.nextID
	s.nextID++
	stored := *profile
	stored.ID = id
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.students[id] = &stored
	return id, nil
}

func (s *fakeProfileStore) GetStudentProfileByID(_ context.Context, id int64) (*models.StudentProfile, error) {
	profile, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	copied := *profile
	copied.User = s.ownerOf(profile.UserID)
	return &copied, nil
}

func (s *fakeProfileStore) GetStudentProfileByUserID(_ context.Context, userID int64) (*models.StudentProfile, error) {
	for _, profile := range s.students {
		if profile.UserID == userID {
			copied := *profile
			copied.User = s.ownerOf(userID)
			return &copied, nil
		}
	}
	return nil, apperrors.ErrProfileNotFound
}

func (s *fakeProfileStore) GetAllStudentProfiles(_ context.Context) ([]*models.StudentProfile, error) {
	profiles := []*models.StudentProfile{}
	for id := int64(1); id < s.nextID; id++ {
		if profile, ok := s.students[id]; ok {
			copied := *profile
			copied.User = s.ownerOf(profile.UserID)
			profiles = append(profiles, &copied)
		}
	}
	return profiles, nil
}

func (s *fakeProfileStore) UpdateStudentProfile(_ context.Context, profile *models.StudentProfile) error {
	stored, ok := s.students[profile.ID]
	if !ok {
		return apperrors.ErrProfileNotFound
	}
	updated := *profile
	updated.User = nil
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = time.Now()
	s.students[profile.ID] = &updated
	return nil
}

func (s *fakeProfileStore) UpdateStudentProfilePicture(_ context.Context, profileID int64, picturePath *string) error {
	profile, ok := s.students[profileID]
	if !ok {
		return apperrors.ErrProfileNotFound
	}
	profile.ProfilePicture = picturePath
	return nil
}

func (s *fakeProfileStore) CreateCouncillorProfile(_ context.Context, profile *models.CouncillorProfile) (int64, error) {
	for _, p := range s.councillors {
		if p.UserID == profile.UserID {
			return 0, apperrors.ErrProfileAlreadyExists
		}
	}
	id := s.nextID
	s.nextID++
	stored := *profile
	stored.ID = id
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.councillors[id] = &stored
	return id, nil
}

func (s *fakeProfileStore) GetCouncillorProfileByID(_ context.Context, id int64) (*models.CouncillorProfile, error) {
	profile, ok := s.councillors[id]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	copied := *profile
	copied.User = s.ownerOf(profile.UserID)
	return &copied, nil
}

func (s *fakeProfileStore) GetCouncillorProfileByUserID(_ context.Context, userID int64) (*models.CouncillorProfile, error) {
	for _, profile := range s.councillors {
		if profile.UserID == userID {
			copied := *profile
			copied.User = s.ownerOf(userID)
			return &copied, nil
		}
	}
	return nil, apperrors.ErrProfileNotFound
}

func (s *fakeProfileStore) GetAllCouncillorProfiles(_ context.Context) ([]*models.CouncillorProfile, error) {
	profiles := []*models.CouncillorProfile{}
	for id := int64(1); id < s.nextID; id++ {
		if profile, ok := s.councillors[id]; ok {
			copied := *profile
			copied.User = s.ownerOf(profile.UserID)
			profiles = append(profiles, &copied)
		}
	}
	return profiles, nil
}

func (s *fakeProfileStore) UpdateCouncillorProfile(_ context.Context, profile *models.CouncillorProfile) error {
	stored, ok := s.councillors[profile.ID]
	if !ok {
		return apperrors.ErrProfileNotFound
	}
	updated := *profile
	updated.User = nil
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = time.Now()
	s.councillors[profile.ID] = &updated
	return nil
}

func (s *fakeProfileStore) UpdateCouncillorProfilePicture(_ context.Context, profileID int64, picturePath *string) error {
	profile, ok := s.councillors[profileID]
	if !ok {
		return apperrors.ErrProfileNotFound
	}
	profile.ProfilePicture = picturePath
	return nil
}

type fakeCourseStore struct {
	courses map[int64]*models.Course
	nextID  int64
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: map[int64]*models.Course{}, nextID: 1}
}

func (s *fakeCourseStore) CreateCourse(_ context.Context, course *models.Course) (int64, error) {
	for _, c := range s.courses {
		if c.CourseCode == course.CourseCode {
			return 0, apperrors.ErrCourseAlreadyExists
		}
	}
	id := s.nextID
	s.nextID++
	stored := *course
	stored.ID = id
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.courses[id] = &stored
	return id, nil
}

func (s *fakeCourseStore) GetCourseByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *course
	return &copied, nil
}

func (s *fakeCourseStore) GetAllCourses(_ context.Context, semester models.Semester) ([]*models.Course, error) {
	courses := []*models.Course{}
	for id := int64(1); id < s.nextID; id++ {
		course, ok := s.courses[id]
		if !ok {
			continue
		}
		if semester != "" && course.Semester != semester {
			continue
		}
		copied := *course
		courses = append(courses, &copied)
	}
	return courses, nil
}

type fakeRegistrationStore struct {
	registrations map[int64]*models.CourseRegistration
	users         *fakeUserStore
	courses       *fakeCourseStore
	nextID        int64
}

func newFakeRegistrationStore(users *fakeUserStore, courses *fakeCourseStore) *fakeRegistrationStore {
	return &fakeRegistrationStore{
		registrations: map[int64]*models.CourseRegistration{},
		users:         users,
		courses:       courses,
		nextID:        1,
	}
}

func (s *fakeRegistrationStore) CreateRegistration(_ context.Context, userID, courseID int64) (int64, error) {
	for _, reg := range s.registrations {
		if reg.UserID == userID && reg.CourseID == courseID {
			return 0, apperrors.ErrAlreadyRegistered
		}
	}
	id := s.nextID
	s.nextID++
	s.registrations[id] = &models.CourseRegistration{
		ID:        id,
		UserID:    userID,
		CourseID:  courseID,
		CreatedAt: time.Now(),
	}
	return id, nil
}

func (s *fakeRegistrationStore) hydrate(reg *models.CourseRegistration) *models.CourseRegistration {
	copied := *reg
	if s.users != nil {
		if user, ok := s.users.users[reg.UserID]; ok {
			u := *user
			copied.User = &u
		}
	}
	if copied.User == nil {
		copied.User = &models.User{ID: reg.UserID}
	}
	if s.courses != nil {
		if course, ok := s.courses.courses[reg.CourseID]; ok {
			c := *course
			copied.Course = &c
		}
	}
	if copied.Course == nil {
		copied.Course = &models.Course{ID: reg.CourseID}
	}
	return &copied
}

func (s *fakeRegistrationStore) GetRegistrationByID(_ context.Context, id int64) (*models.CourseRegistration, error) {
	reg, ok := s.registrations[id]
	if !ok {
		return nil, apperrors.ErrRegistrationNotFound
	}
	return s.hydrate(reg), nil
}

func (s *fakeRegistrationStore) GetAllRegistrations(_ context.Context) ([]*models.CourseRegistration, error) {
	registrations := []*models.CourseRegistration{}
	for id := int64(1); id < s.nextID; id++ {
		if reg, ok := s.registrations[id]; ok {
			registrations = append(registrations, s.hydrate(reg))
		}
	}
	return registrations, nil
}

func (s *fakeRegistrationStore) GetRegistrationsByUserID(_ context.Context, userID int64) ([]*models.CourseRegistration, error) {
	registrations := []*models.CourseRegistration{}
	for id := int64(1); id < s.nextID; id++ {
		if reg, ok := s.registrations[id]; ok && reg.UserID == userID {
			registrations = append(registrations, s.hydrate(reg))
		}
	}
	return registrations, nil
}

func (s *fakeRegistrationStore) DeleteRegistration(_ context.Context, id int64) error {
	if _, ok := s.registrations[id]; !ok {
		return apperrors.ErrRegistrationNotFound
	}
	delete(s.registrations, id)
	return nil
}

// fakeFileStorage records saved paths without touching the filesystem.
type fakeFileStorage struct {
	saved   []string
	deleted []string
}

func (f *fakeFileStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error) {
	name := "uploads/" + path + "/picture.png"
	if fileHeader != nil {
		name = "uploads/" + path + "/" + fileHeader.Filename
	}
	f.saved = append(f.saved, name)
	return name, nil
}

func (f *fakeFileStorage) DeleteFile(filePath string) error {
	f.deleted = append(f.deleted, filePath)
	return nil
}
