package models

import (
	"time"
)

// User represents the rtrw_users table. Password holds a bcrypt hash and
// is never serialized in responses.
type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"column:name"`
	Email     string    `json:"email" gorm:"column:email;uniqueIndex"`
	Password  string    `json:"-" gorm:"column:password"`
	Role      string    `json:"role" gorm:"column:role"`
	Phone     string    `json:"phone" gorm:"column:phone"`
	Status    string    `json:"status" gorm:"column:status"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the insert table name for User
func (User) TableName() string {
	return "rtrw_users"
}
