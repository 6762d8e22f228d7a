package models

import (
	"time"
)

// SchedulerLog represents the rtrw_scheduler_logs table. One row is
// written per phase of a scheduled job run (START, SUCCESS, FAILED),
// all sharing the same RunID.
type SchedulerLog struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	RunID     string    `json:"run_id" gorm:"column:run_id"`
	Code      string    `json:"code" gorm:"column:code"`
	Message   string    `json:"message" gorm:"column:message"`
	Status    string    `json:"status" gorm:"column:status"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the insert table name for SchedulerLog
func (SchedulerLog) TableName() string {
	return "rtrw_scheduler_logs"
}
