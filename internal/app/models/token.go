package models

import "time"

// RefreshToken is a persisted refresh token tied to an account
type RefreshToken struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Token     string    `json:"token" db:"token"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	IsRevoked bool      `json:"isRevoked" db:"is_revoked"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// IsExpired reports whether the token is past its expiry
func (t *RefreshToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
