package models

import (
	"time"
)

// Report represents the rtrw_reports table (laporan warga / keluhan)
type Report struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Title       string    `json:"title" gorm:"column:title"`
	Description string    `json:"description" gorm:"column:description"`
	Priority    string    `json:"priority" gorm:"column:priority"`
	Status      string    `json:"status" gorm:"column:status"`
	UUID        string    `json:"uuid" gorm:"column:uuid;uniqueIndex"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName sets the insert table name for Report
func (Report) TableName() string {
	return "rtrw_reports"
}
