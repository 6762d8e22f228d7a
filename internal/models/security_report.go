package models

import (
	"time"
)

// SecurityReport represents the rtrw_securities table (laporan keamanan)
type SecurityReport struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Date         string    `json:"date" gorm:"column:date"`
	Descriptions string    `json:"descriptions" gorm:"column:descriptions"`
	Location     string    `json:"location" gorm:"column:location"`
	Reporter     string    `json:"reporter" gorm:"column:reporter"`
	Status       string    `json:"status" gorm:"column:status"`
	UUID         string    `json:"uuid" gorm:"column:uuid;uniqueIndex"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName sets the insert table name for SecurityReport
func (SecurityReport) TableName() string {
	return "rtrw_securities"
}
