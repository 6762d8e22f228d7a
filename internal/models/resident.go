package models

import (
	"time"
)

// Resident represents the rtrw_residents table (warga)
type Resident struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	NIK       string    `json:"nik" gorm:"column:nik;uniqueIndex"`
	Name      string    `json:"name" gorm:"column:name"`
	Address   string    `json:"address" gorm:"column:address"`
	RT        string    `json:"rt" gorm:"column:rt"`
	RW        string    `json:"rw" gorm:"column:rw"`
	Phone     string    `json:"phone" gorm:"column:phone"`
	Status    string    `json:"status" gorm:"column:status"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the insert table name for Resident
func (Resident) TableName() string {
	return "rtrw_residents"
}
