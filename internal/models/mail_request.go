package models

import (
	"time"
)

// MailRequest represents the rtrw_mail_managements table (surat)
type MailRequest struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	MailNumber   string    `json:"mail_number" gorm:"column:mail_number"`
	MailCategory string    `json:"mail_category" gorm:"column:mail_category"`
	Applicant    string    `json:"applicant" gorm:"column:applicant"`
	Status       string    `json:"status" gorm:"column:status"`
	UUID         string    `json:"uuid" gorm:"column:uuid;uniqueIndex"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName sets the insert table name for MailRequest
func (MailRequest) TableName() string {
	return "rtrw_mail_managements"
}
