package model

import "time"

// User stores system accounts with a role string.
// Role: "user" (default) | "admin"
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"` // bcrypt hash, never the clear text
	FullName  string `gorm:"not null"`
	Email     string `gorm:"not null;default:''"`
	Role      string `gorm:"type:varchar(20);not null;default:'user'"`
	CreatedAt time.Time
}
