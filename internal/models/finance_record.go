package models

import (
	"time"
)

// FinanceRecord represents the rtrw_finances table (keuangan).
// Amount is always positive; whether it counts as income or expense is
// carried by FinanceCategory, not by the sign of the number.
type FinanceRecord struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	FinanceCategory string    `json:"finance_category" gorm:"column:finance_category"`
	Category        string    `json:"category" gorm:"column:category"`
	Amount          int64     `json:"amount" gorm:"column:amount"`
	Description     string    `json:"description" gorm:"column:description"`
	UUID            string    `json:"uuid" gorm:"column:uuid;uniqueIndex"`
	CreatedAt       time.Time `json:"created_at"`
}

// TableName sets the insert table name for FinanceRecord
func (FinanceRecord) TableName() string {
	return "rtrw_finances"
}
