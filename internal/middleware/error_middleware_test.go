package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/adeolu/campusreg/internal/app/models/dto"
	"github.com/adeolu/campusreg/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{
			// Duplicate account identifiers read as field validation
			// failures on the registration form, not conflicts.
			name:       "duplicate email is a validation failure",
			err:        apperrors.ErrEmailAlreadyExists,
			wantStatus: 400,
			wantCode:   dto.ErrorCodeValidationFailed,
		},
		{
			name:       "duplicate username is a validation failure",
			err:        apperrors.ErrUsernameAlreadyExists,
			wantStatus: 400,
			wantCode:   dto.ErrorCodeValidationFailed,
		},
		{
			name:       "duplicate profile is a conflict",
			err:        apperrors.ErrProfileAlreadyExists,
			wantStatus: 409,
			wantCode:   dto.ErrorCodeResourceAlreadyExists,
		},
		{
			name:       "duplicate course code is a conflict",
			err:        apperrors.ErrCourseAlreadyExists,
			wantStatus: 409,
			wantCode:   dto.ErrorCodeResourceAlreadyExists,
		},
		{
			name:       "duplicate enrollment is a conflict",
			err:        apperrors.ErrAlreadyRegistered,
			wantStatus: 409,
			wantCode:   dto.ErrorCodeResourceAlreadyExists,
		},
		{
			name:       "validation failure",
			err:        apperrors.NewValidationError("phone number does not match the expected format"),
			wantStatus: 400,
			wantCode:   dto.ErrorCodeValidationFailed,
		},
		{
			name:       "permission denied",
			err:        apperrors.ErrPermissionDenied,
			wantStatus: 403,
			wantCode:   dto.ErrorCodeForbidden,
		},
		{
			name:       "missing resource",
			err:        apperrors.ErrCourseNotFound,
			wantStatus: 404,
			wantCode:   dto.ErrorCodeResourceNotFound,
		},
		{
			name:       "invalid credentials",
			err:        apperrors.ErrInvalidCredentials,
			wantStatus: 401,
			wantCode:   dto.ErrorCodeInvalidCredentials,
		},
		{
			name:       "expired token",
			err:        apperrors.ErrTokenExpired,
			wantStatus: 401,
			wantCode:   dto.ErrorCodeExpiredToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleAPIError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var resp dto.APIResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}
			if resp.Error == nil {
				t.Fatal("expected error detail in response")
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("error code = %s, want %s", resp.Error.Code, tt.wantCode)
			}
		})
	}
}
