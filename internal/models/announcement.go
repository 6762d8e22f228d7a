package models

import (
	"time"
)

// Announcement represents the rtrw_announcements table (pengumuman)
type Announcement struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Title        string    `json:"title" gorm:"column:title"`
	Descriptions string    `json:"descriptions" gorm:"column:descriptions"`
	Priority     string    `json:"priority" gorm:"column:priority"`
	Status       string    `json:"status" gorm:"column:status"`
	UUID         string    `json:"uuid" gorm:"column:uuid;uniqueIndex"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName sets the insert table name for Announcement
func (Announcement) TableName() string {
	return "rtrw_announcements"
}
