// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// DefaultRole is the role assigned to every user at signup.
const DefaultRole = 1

// User represents a registered user in the system.
type User struct {
	// ID is assigned at creation and never changes.
	ID uint `gorm:"primaryKey"`

	// Email is the login identifier. It is unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	GivenName  string `gorm:"size:255;not null;default:''"`
	FamilyName string `gorm:"size:255;not null;default:''"`

	// AvatarURL is a URI for the user's avatar image.
	AvatarURL string `gorm:"size:1024;not null;default:''"`

	Role int `gorm:"not null;default:1"`

	// PasswordHash is the bcrypt hash of the password.
	// It must never leave the store boundary in a response.
	PasswordHash string `gorm:"column:password_hash;size:255;not null" json:"-"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "users"
}
