// Package entity defines the domain entities for the org feature.
package entity

import "time"

// Org groups the apps of one owner.
type Org struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"size:255;not null"`
	OwnerID uint   `gorm:"index;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (Org) TableName() string {
	return "orgs"
}
