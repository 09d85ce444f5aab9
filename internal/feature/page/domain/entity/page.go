// Package entity defines the domain entities for the page feature.
package entity

import "time"

// Page belongs to an app and holds named content entries.
type Page struct {
	ID    uint   `gorm:"primaryKey"`
	AppID uint   `gorm:"index;not null"`
	Name  string `gorm:"size:255;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (Page) TableName() string {
	return "pages"
}
