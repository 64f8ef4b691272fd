package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/adeolu/campusreg/internal/app/models"
	"github.com/adeolu/campusreg/internal/app/models/dto"
	"github.com/adeolu/campusreg/internal/pkg/apperrors"
	"github.com/adeolu/campusreg/internal/pkg/auth"
)

func newTestAuthService() (*AuthService, *fakeUserStore, *fakeTokenStore) {
	userStore := newFakeUserStore()
	tokenStore := newFakeTokenStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
	svc := NewAuthService(userStore, tokenStore, jwtService, zerolog.Nop())
	return svc, userStore, tokenStore
}

func registerRequest(username, email string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username:           username,
		Email:              email,
		Password:           "secret1",
		Password2:          "secret1",
		RegistrationNumber: "REG001",
		FirstName:          "Ada",
		LastName:           "Obi",
		Role:               models.RoleStudent,
	}
}

func TestAuthServiceRegister(t *testing.T) {
	t.Run("creates account with hashed password", func(t *testing.T) {
		svc, userStore, _ := newTestAuthService()

		user, err := svc.Register(context.Background(), registerRequest("ada", "ada@example.com"))
		if err != nil {
			t.Fatalf("Register() error: %v", err)
		}
		if user.ID == 0 {
			t.Error("expected assigned id")
		}
		if user.IsSuperuser {
			t.Error("registered accounts must not be superusers")
		}

		stored := userStore.users[user.ID]
		if stored.Password == "secret1" {
			t.Error("password stored in clear")
		}
		if !auth.CheckPassword(stored.Password, "secret1") {
			t.Error("stored hash does not verify against the password")
		}
	})

	t.Run("rejects mismatched passwords", func(t *testing.T) {
		svc, _, _ := newTestAuthService()

		req := registerRequest("ada", "ada@example.com")
		req.Password2 = "different"
		if _, err := svc.Register(context.Background(), req); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("expected validation failure, got %v", err)
		}
	})

	t.Run("rejects non-alphanumeric username", func(t *testing.T) {
		svc, _, _ := newTestAuthService()

		req := registerRequest("ada obi", "ada@example.com")
		if _, err := svc.Register(context.Background(), req); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("expected validation failure, got %v", err)
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		svc, _, _ := newTestAuthService()

		if _, err := svc.Register(context.Background(), registerRequest("ada", "ada@example.com")); err != nil {
			t.Fatalf("first Register() error: %v", err)
		}
		_, err := svc.Register(context.Background(), registerRequest("other", "ada@example.com"))
		if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		svc, _, _ := newTestAuthService()

		if _, err := svc.Register(context.Background(), registerRequest("ada", "ada@example.com")); err != nil {
			t.Fatalf("first Register() error: %v", err)
		}
		_, err := svc.Register(context.Background(), registerRequest("ada", "other@example.com"))
		if !errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
			t.Errorf("expected ErrUsernameAlreadyExists, got %v", err)
		}
	})
}

func TestAuthServiceLogin(t *testing.T) {
	newRegistered := func(t *testing.T) (*AuthService, *fakeUserStore, *fakeTokenStore, *models.User) {
		t.Helper()
		svc, userStore, tokenStore := newTestAuthService()
		user, err := svc.Register(context.Background(), registerRequest("ada", "ada@example.com"))
		if err != nil {
			t.Fatalf("Register() error: %v", err)
		}
		return svc, userStore, tokenStore, user
	}

	t.Run("issues a token pair", func(t *testing.T) {
		svc, _, tokenStore, _ := newRegistered(t)

		resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ada@example.com", Password: "secret1"})
		if err != nil {
			t.Fatalf("Login() error: %v", err)
		}
		if resp.Tokens.AccessToken == "" || resp.Tokens.RefreshToken == "" {
			t.Error("expected both tokens to be issued")
		}
		if resp.Tokens.TokenType != "Bearer" {
			t.Errorf("token type = %q, want Bearer", resp.Tokens.TokenType)
		}
		if _, ok := tokenStore.tokens[resp.Tokens.RefreshToken]; !ok {
			t.Error("refresh token not persisted")
		}
	})

	t.Run("distinct failure reasons", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(*models.User)
			email   string
			pass    string
			wantErr error
		}{
			{"unknown email", nil, "nobody@example.com", "secret1", apperrors.ErrInvalidCredentials},
			{"wrong password", nil, "ada@example.com", "wrong", apperrors.ErrInvalidCredentials},
			{"disabled account", func(u *models.User) { u.IsActive = false }, "ada@example.com", "secret1", apperrors.ErrAccountDisabled},
			{"unverified account", func(u *models.User) { u.IsVerified = false }, "ada@example.com", "secret1", apperrors.ErrAccountNotVerified},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				svc, userStore, _, user := newRegistered(t)
				if tc.mutate != nil {
					tc.mutate(userStore.users[user.ID])
				}

				_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: tc.email, Password: tc.pass})
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("Login() error = %v, want %v", err, tc.wantErr)
				}
			})
		}
	})
}

func TestAuthServiceRefreshToken(t *testing.T) {
	login := func(t *testing.T, svc *AuthService) string {
		t.Helper()
		resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ada@example.com", Password: "secret1"})
		if err != nil {
			t.Fatalf("Login() error: %v", err)
		}
		return resp.Tokens.RefreshToken
	}

	t.Run("rotates the token", func(t *testing.T) {
		svc, _, tokenStore := newTestAuthService()
		if _, err := svc.Register(context.Background(), registerRequest("ada", "ada@example.com")); err != nil {
			t.Fatalf("Register() error: %v", err)
		}
		old := login(t, svc)

		tokens, err := svc.RefreshToken(context.Background(), old)
		if err != nil {
			t.Fatalf("RefreshToken() error: %v", err)
		}
		if tokens.RefreshToken == old {
			t.Error("refresh token was not rotated")
		}
		if !tokenStore.tokens[old].IsRevoked {
			t.Error("old token not revoked")
		}

		// Replaying the rotated token must fail.
		if _, err := svc.RefreshToken(context.Background(), old); !errors.Is(err, apperrors.ErrTokenRevoked) {
			t.Errorf("replay error = %v, want ErrTokenRevoked", err)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		svc, _, _ := newTestAuthService()
		if _, err := svc.RefreshToken(context.Background(), "no-such-token"); !errors.Is(err, apperrors.ErrTokenNotFound) {
			t.Errorf("error = %v, want ErrTokenNotFound", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		svc, _, tokenStore := newTestAuthService()
		if _, err := svc.Register(context.Background(), registerRequest("ada", "ada@example.com")); err != nil {
			t.Fatalf("Register() error: %v", err)
		}
		token := login(t, svc)
		tokenStore.tokens[token].ExpiresAt = time.Now().Add(-time.Minute)

		if _, err := svc.RefreshToken(context.Background(), token); !errors.Is(err, apperrors.ErrTokenExpired) {
			t.Errorf("error = %v, want ErrTokenExpired", err)
		}
	})
}

func TestAuthServiceLogout(t *testing.T) {
	setup := func(t *testing.T) (*AuthService, *fakeTokenStore, *models.User, string) {
		t.Helper()
		svc, _, tokenStore := newTestAuthService()
		user, err := svc.Register(context.Background(), registerRequest("ada", "ada@example.com"))
		if err != nil {
			t.Fatalf("Register() error: %v", err)
		}
		resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ada@example.com", Password: "secret1"})
		if err != nil {
			t.Fatalf("Login() error: %v", err)
		}
		return svc, tokenStore, user, resp.Tokens.RefreshToken
	}

	t.Run("revokes owned token permanently", func(t *testing.T) {
		svc, tokenStore, user, token := setup(t)

		if err := svc.Logout(context.Background(), user.ID, token); err != nil {
			t.Fatalf("Logout() error: %v", err)
		}
		if !tokenStore.tokens[token].IsRevoked {
			t.Error("token not revoked")
		}

		// A second logout with the same token is an invalid-token failure.
		if err := svc.Logout(context.Background(), user.ID, token); !errors.Is(err, apperrors.ErrTokenInvalid) {
			t.Errorf("second Logout() error = %v, want ErrTokenInvalid", err)
		}
	})

	t.Run("rejects another account's token", func(t *testing.T) {
		svc, _, user, token := setup(t)

		if err := svc.Logout(context.Background(), user.ID+99, token); !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Errorf("Logout() error = %v, want ErrPermissionDenied", err)
		}
	})

	t.Run("unknown and malformed tokens", func(t *testing.T) {
		svc, _, user, _ := setup(t)

		if err := svc.Logout(context.Background(), user.ID, "no-such-token"); !errors.Is(err, apperrors.ErrTokenInvalid) {
			t.Errorf("unknown token error = %v, want ErrTokenInvalid", err)
		}
		if err := svc.Logout(context.Background(), user.ID, ""); !errors.Is(err, apperrors.ErrTokenInvalid) {
			t.Errorf("empty token error = %v, want ErrTokenInvalid", err)
		}
	})
}

func TestAuthServiceChangePassword(t *testing.T) {
	setup := func(t *testing.T) (*AuthService, *fakeUserStore, *fakeTokenStore, *models.User) {
		t.Helper()
		svc, userStore, tokenStore := newTestAuthService()
		user, err := svc.Register(context.Background(), registerRequest("ada", "ada@example.com"))
		if err != nil {
			t.Fatalf("Register() error: %v", err)
		}
		return svc, userStore, tokenStore, user
	}

	t.Run("replaces the hash and revokes sessions", func(t *testing.T) {
		svc, userStore, tokenStore, user := setup(t)
		resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ada@example.com", Password: "secret1"})
		if err != nil {
			t.Fatalf("Login() error: %v", err)
		}

		req := &dto.ChangePasswordRequest{OldPassword: "secret1", Password: "newsecret", Password2: "newsecret"}
		if err := svc.ChangePassword(context.Background(), user.ID, req); err != nil {
			t.Fatalf("ChangePassword() error: %v", err)
		}

		if !auth.CheckPassword(userStore.users[user.ID].Password, "newsecret") {
			t.Error("new password does not verify")
		}
		if !tokenStore.tokens[resp.Tokens.RefreshToken].IsRevoked {
			t.Error("existing refresh token not revoked")
		}
	})

	t.Run("wrong current password is a permission failure", func(t *testing.T) {
		svc, _, _, user := setup(t)

		req := &dto.ChangePasswordRequest{OldPassword: "wrong", Password: "newsecret", Password2: "newsecret"}
		if err := svc.ChangePassword(context.Background(), user.ID, req); !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Errorf("error = %v, want ErrPermissionDenied", err)
		}
	})

	t.Run("mismatched new passwords are a validation failure", func(t *testing.T) {
		svc, _, _, user := setup(t)

		req := &dto.ChangePasswordRequest{OldPassword: "secret1", Password: "newsecret", Password2: "othersecret"}
		if err := svc.ChangePassword(context.Background(), user.ID, req); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("error = %v, want ErrValidationFailed", err)
		}
	})
}

func TestAuthServiceUpdateAccount(t *testing.T) {
	t.Run("replaces all fields", func(t *testing.T) {
		svc, _, _ := newTestAuthService()
		user, err := svc.Register(context.Background(), registerRequest("ada", "ada@example.com"))
		if err != nil {
			t.Fatalf("Register() error: %v", err)
		}

		req := &dto.UpdateAccountRequest{Username: "adaeze", FirstName: "Adaeze", LastName: "Obi", Email: "adaeze@example.com"}
		updated, err := svc.UpdateAccount(context.Background(), user.ID, req)
		if err != nil {
			t.Fatalf("UpdateAccount() error: %v", err)
		}
		if updated.Username != "adaeze" || updated.Email != "adaeze@example.com" {
			t.Errorf("update not applied: %+v", updated)
		}
	})

	t.Run("rejects conflicts with other accounts", func(t *testing.T) {
		svc, _, _ := newTestAuthService()
		if _, err := svc.Register(context.Background(), registerRequest("ada", "ada@example.com")); err != nil {
			t.Fatalf("Register() error: %v", err)
		}
		other, err := svc.Register(context.Background(), registerRequest("chidi", "chidi@example.com"))
		if err != nil {
			t.Fatalf("Register() error: %v", err)
		}

		req := &dto.UpdateAccountRequest{Username: "chidi", FirstName: "Chidi", LastName: "Eze", Email: "ada@example.com"}
		if _, err := svc.UpdateAccount(context.Background(), other.ID, req); !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			t.Errorf("error = %v, want ErrEmailAlreadyExists", err)
		}

		req = &dto.UpdateAccountRequest{Username: "ada", FirstName: "Chidi", LastName: "Eze", Email: "chidi@example.com"}
		if _, err := svc.UpdateAccount(context.Background(), other.ID, req); !errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
			t.Errorf("error = %v, want ErrUsernameAlreadyExists", err)
		}
	})

	t.Run("keeping own email and username is not a conflict", func(t *testing.T) {
		svc, _, _ := newTestAuthService()
		user, err := svc.Register(context.Background(), registerRequest("ada", "ada@example.com"))
		if err != nil {
			t.Fatalf("Register() error: %v", err)
		}

		req := &dto.UpdateAccountRequest{Username: "ada", FirstName: "Adaeze", LastName: "Obi", Email: "ada@example.com"}
		if _, err := svc.UpdateAccount(context.Background(), user.ID, req); err != nil {
			t.Errorf("UpdateAccount() error: %v", err)
		}
	})
}
