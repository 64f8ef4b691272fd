package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/adeolu/campusreg/internal/app/models"
	"github.com/adeolu/campusreg/internal/pkg/apperrors"
)

func newTestRegistrationService(t *testing.T) (*RegistrationService, *fakeUserStore, *fakeCourseStore) {
	t.Helper()
	userStore := newFakeUserStore()
	courseStore := newFakeCourseStore()
	registrationStore := newFakeRegistrationStore(userStore, courseStore)
	svc := NewRegistrationService(registrationStore, courseStore, zerolog.Nop())
	return svc, userStore, courseStore
}

func seedCourse(t *testing.T, courseStore *fakeCourseStore, code string) *models.Course {
	t.Helper()
	course := &models.Course{
		Semester:      models.SemesterFirst,
		CourseCode:    code,
		CourseName:    "Data Structures",
		CourseType:    models.CourseTypeCore,
		CourseUnit:    3,
		MinimumCredit: 15,
		MaximumCredit: 24,
	}
	id, err := courseStore.CreateCourse(context.Background(), course)
	if err != nil {
		t.Fatalf("seed course: %v", err)
	}
	course.ID = id
	return course
}

func TestRegistrationServiceRegisterForCourse(t *testing.T) {
	t.Run("caller enrolls in a course", func(t *testing.T) {
		svc, userStore, courseStore := newTestRegistrationService(t)
		user := seedUser(t, userStore, "ada", "ada@example.com")
		course := seedCourse(t, courseStore, "CSC201")

		reg, err := svc.RegisterForCourse(context.Background(), user.ID, user.ID, course.ID)
		if err != nil {
			t.Fatalf("RegisterForCourse() error: %v", err)
		}
		if reg.UserID != user.ID || reg.CourseID != course.ID {
			t.Errorf("registration = %+v", reg)
		}
		if reg.User == nil || reg.User.Username != "ada" {
			t.Error("expected the account to be embedded")
		}
		if reg.Course == nil || reg.Course.CourseCode != "CSC201" {
			t.Error("expected the course to be embedded")
		}
	})

	t.Run("enrolling another account is denied", func(t *testing.T) {
		svc, userStore, courseStore := newTestRegistrationService(t)
		actor := seedUser(t, userStore, "ada", "ada@example.com")
		target := seedUser(t, userStore, "chidi", "chidi@example.com")
		course := seedCourse(t, courseStore, "CSC201")

		_, err := svc.RegisterForCourse(context.Background(), actor.ID, target.ID, course.ID)
		if !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Errorf("error = %v, want ErrPermissionDenied", err)
		}
	})

	t.Run("unknown course", func(t *testing.T) {
		svc, userStore, _ := newTestRegistrationService(t)
		user := seedUser(t, userStore, "ada", "ada@example.com")

		_, err := svc.RegisterForCourse(context.Background(), user.ID, user.ID, 999)
		if !errors.Is(err, apperrors.ErrCourseNotFound) {
			t.Errorf("error = %v, want ErrCourseNotFound", err)
		}
	})

	t.Run("duplicate enrollment is a conflict", func(t *testing.T) {
		svc, userStore, courseStore := newTestRegistrationService(t)
		user := seedUser(t, userStore, "ada", "ada@example.com")
		course := seedCourse(t, courseStore, "CSC201")

		if _, err := svc.RegisterForCourse(context.Background(), user.ID, user.ID, course.ID); err != nil {
			t.Fatalf("first RegisterForCourse() error: %v", err)
		}
		_, err := svc.RegisterForCourse(context.Background(), user.ID, user.ID, course.ID)
		if !errors.Is(err, apperrors.ErrAlreadyRegistered) {
			t.Errorf("error = %v, want ErrAlreadyRegistered", err)
		}
	})

	t.Run("same course for different accounts is allowed", func(t *testing.T) {
		svc, userStore, courseStore := newTestRegistrationService(t)
		ada := seedUser(t, userStore, "ada", "ada@example.com")
		chidi := seedUser(t, userStore, "chidi", "chidi@example.com")
		course := seedCourse(t, courseStore, "CSC201")

		if _, err := svc.RegisterForCourse(context.Background(), ada.ID, ada.ID, course.ID); err != nil {
			t.Fatalf("RegisterForCourse(ada) error: %v", err)
		}
		if _, err := svc.RegisterForCourse(context.Background(), chidi.ID, chidi.ID, course.ID); err != nil {
			t.Fatalf("RegisterForCourse(chidi) error: %v", err)
		}
	})
}

func TestRegistrationServiceListing(t *testing.T) {
	svc, userStore, courseStore := newTestRegistrationService(t)
	ada := seedUser(t, userStore, "ada", "ada@example.com")
	chidi := seedUser(t, userStore, "chidi", "chidi@example.com")
	first := seedCourse(t, courseStore, "CSC201")
	second := seedCourse(t, courseStore, "CSC202")

	for _, enrollment := range []struct{ userID, courseID int64 }{
		{ada.ID, first.ID},
		{ada.ID, second.ID},
		{chidi.ID, first.ID},
	} {
		if _, err := svc.RegisterForCourse(context.Background(), enrollment.userID, enrollment.userID, enrollment.courseID); err != nil {
			t.Fatalf("RegisterForCourse(%d, %d) error: %v", enrollment.userID, enrollment.courseID, err)
		}
	}

	t.Run("full ledger", func(t *testing.T) {
		all, err := svc.GetAllRegistrations(context.Background())
		if err != nil {
			t.Fatalf("GetAllRegistrations() error: %v", err)
		}
		if len(all) != 3 {
			t.Errorf("listed %d registrations, want 3", len(all))
		}
	})

	t.Run("per-account listing", func(t *testing.T) {
		mine, err := svc.GetRegistrationsForUser(context.Background(), ada.ID)
		if err != nil {
			t.Fatalf("GetRegistrationsForUser() error: %v", err)
		}
		if len(mine) != 2 {
			t.Fatalf("listed %d registrations, want 2", len(mine))
		}
		for _, reg := range mine {
			if reg.UserID != ada.ID {
				t.Errorf("foreign registration in per-account listing: %+v", reg)
			}
		}
	})

	t.Run("account with no enrollments", func(t *testing.T) {
		none, err := svc.GetRegistrationsForUser(context.Background(), 999)
		if err != nil {
			t.Fatalf("GetRegistrationsForUser() error: %v", err)
		}
		if len(none) != 0 {
			t.Errorf("listed %d registrations, want 0", len(none))
		}
	})
}

func TestRegistrationServiceDropRegistration(t *testing.T) {
	setup := func(t *testing.T) (*RegistrationService, *models.User, *models.CourseRegistration) {
		t.Helper()
		svc, userStore, courseStore := newTestRegistrationService(t)
		user := seedUser(t, userStore, "ada", "ada@example.com")
		course := seedCourse(t, courseStore, "CSC201")
		reg, err := svc.RegisterForCourse(context.Background(), user.ID, user.ID, course.ID)
		if err != nil {
			t.Fatalf("RegisterForCourse() error: %v", err)
		}
		return svc, user, reg
	}

	t.Run("owner drops the enrollment", func(t *testing.T) {
		svc, user, reg := setup(t)

		if err := svc.DropRegistration(context.Background(), user.ID, reg.ID); err != nil {
			t.Fatalf("DropRegistration() error: %v", err)
		}
		if _, err := svc.GetRegistration(context.Background(), reg.ID); !errors.Is(err, apperrors.ErrRegistrationNotFound) {
			t.Errorf("error = %v, want ErrRegistrationNotFound", err)
		}
	})

	t.Run("only the owner may drop", func(t *testing.T) {
		svc, user, reg := setup(t)

		if err := svc.DropRegistration(context.Background(), user.ID+1, reg.ID); !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Errorf("error = %v, want ErrPermissionDenied", err)
		}
		if _, err := svc.GetRegistration(context.Background(), reg.ID); err != nil {
			t.Errorf("registration should survive a denied drop: %v", err)
		}
	})

	t.Run("unknown registration", func(t *testing.T) {
		svc, _, _ := newTestRegistrationService(t)

		if err := svc.DropRegistration(context.Background(), 1, 999); !errors.Is(err, apperrors.ErrRegistrationNotFound) {
			t.Errorf("error = %v, want ErrRegistrationNotFound", err)
		}
	})
}
