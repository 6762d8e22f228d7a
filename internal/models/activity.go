package models

import (
	"time"
)

// Activity represents the rtrw_activities table (kegiatan).
// Date is stored as YYYY-MM-DD, TimeStart/TimeEnd as HH:MM.
type Activity struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	ActivityName string    `json:"activity_name" gorm:"column:activity_name"`
	Date         string    `json:"date" gorm:"column:date"`
	TimeStart    string    `json:"time_start" gorm:"column:time_start"`
	TimeEnd      string    `json:"time_end" gorm:"column:time_end"`
	Location     string    `json:"location" gorm:"column:location"`
	Description  string    `json:"description" gorm:"column:description"`
	Guarantor    string    `json:"guarantor" gorm:"column:guarantor"`
	Status       string    `json:"status" gorm:"column:status"`
	UUID         string    `json:"uuid" gorm:"column:uuid;uniqueIndex"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName sets the insert table name for Activity
func (Activity) TableName() string {
	return "rtrw_activities"
}
