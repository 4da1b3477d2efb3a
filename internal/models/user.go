package models

import "time"

// User is the persisted representation of a user row.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	AuthProvider string `db:"auth_provider"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	RefreshTokenHash       string     `db:"refresh_token_hash"`
	RefreshTokenExpiryTime *time.Time `db:"refresh_token_expiry_time"`

	PasswordResetTokenHash  string     `db:"password_reset_token_hash"`
	PasswordResetExpiryTime *time.Time `db:"password_reset_expiry_time"`
}
