// Package entity defines the domain entities for the app feature.
package entity

import "time"

// App is a site managed inside an org.
type App struct {
	ID          uint   `gorm:"primaryKey"`
	OrgID       uint   `gorm:"index;not null"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"size:1024;not null;default:''"`
	URL         string `gorm:"column:url;size:1024;not null;default:''"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (App) TableName() string {
	return "apps"
}
