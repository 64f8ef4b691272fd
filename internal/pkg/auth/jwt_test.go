package auth

import (
	"testing"
	"time"

	"github.com/adeolu/campusreg/internal/app/models"
)

func testService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "campusreg.test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := testService(time.Hour)
	usr := &models.User{
		ID:          7,
		Username:    "adaobi1",
		Email:       "adaobi@school.edu.ng",
		Role:        models.RoleStudent,
		IsActive:    true,
		IsVerified:  true,
		IsSuperuser: false,
	}

	access, refresh, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(usr)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("expected non-empty token pair")
	}
	if expiresIn != int(time.Hour.Seconds()) {
		t.Errorf("expiresIn = %d, want %d", expiresIn, int(time.Hour.Seconds()))
	}
	if refreshExpiresIn != int((24 * time.Hour).Seconds()) {
		t.Errorf("refreshExpiresIn = %d, want %d", refreshExpiresIn, int((24*time.Hour).Seconds()))
	}

	claims, err := svc.ValidateAndExtractClaims(access)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims() error = %v", err)
	}
	if claims.UserID != usr.ID {
		t.Errorf("claims.UserID = %d, want %d", claims.UserID, usr.ID)
	}
	if claims.Email != usr.Email {
		t.Errorf("claims.Email = %q, want %q", claims.Email, usr.Email)
	}
	if claims.Role != string(models.RoleStudent) {
		t.Errorf("claims.Role = %q, want %q", claims.Role, models.RoleStudent)
	}
	if claims.IsSuperuser {
		t.Error("claims.IsSuperuser = true, want false")
	}
}

func TestValidateToken_Errors(t *testing.T) {
	svc := testService(time.Hour)

	expiredSvc := testService(-time.Hour)
	usr := &models.User{ID: 1, Email: "t@test.test", Role: models.RoleStudent}
	expiredAccess, _, _, _, err := expiredSvc.GenerateTokenPair(usr)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "empty token", token: "", wantErr: ErrInvalidToken},
		{name: "garbage token", token: "not.a.jwt"},
		{name: "expired token", token: expiredAccess, wantErr: ErrExpiredToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateAndExtractClaims(tt.token)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantErr != nil && err != tt.wantErr {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "empty header", header: "", wantErr: ErrInvalidFormat},
		{name: "bearer prefix", header: "Bearer abc123", want: "abc123"},
		{name: "raw token", header: "abc123", want: "abc123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if err != tt.wantErr {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("token = %q, want %q", got, tt.want)
			}
		})
	}
}
