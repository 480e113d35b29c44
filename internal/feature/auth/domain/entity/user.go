// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User is the credential record of a registered identity.
// A verified user never carries a verification code.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the login key. It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:100;not null"`

	// Password is the bcrypt hash of the user's password.
	// Plaintext passwords are never stored here.
	Password string `gorm:"size:255;not null"`

	FirstName string `gorm:"column:first_name;size:50;not null"`
	LastName  string `gorm:"column:last_name;size:50;not null"`

	// Role defaults to RoleUser at registration.
	Role Role `gorm:"size:16;not null;default:user"`

	IsVerified bool `gorm:"column:is_verified;not null;default:false"`

	// VerificationCode is set while the account is pending verification
	// and cleared (NULL) once verification succeeds.
	VerificationCode *string `gorm:"column:verification_code;size:10"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "users"
}

// IsPendingVerification reports whether the account still waits for its code.
func (u *User) IsPendingVerification() bool {
	return !u.IsVerified
}
