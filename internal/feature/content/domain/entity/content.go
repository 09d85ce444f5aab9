// Package entity defines the domain entities for the content feature.
package entity

import "time"

// Content is one named text entry of a page. Names are unique per page.
type Content struct {
	ID     uint   `gorm:"primaryKey"`
	PageID uint   `gorm:"not null;uniqueIndex:idx_content_page_name"`
	Name   string `gorm:"size:255;not null;uniqueIndex:idx_content_page_name"`
	Body   string `gorm:"type:text;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (Content) TableName() string {
	return "content"
}
