package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"unique;size:30"`
	Password string `json:"password"`
	Name     string `json:"name" gorm:"size:40"`
	Email    string `json:"email" gorm:"unique"`
	Role     string `json:"role" gorm:"size:10;default:'USER'"`
}

// LoginLog keeps one row per issued session so logouts can be stamped.
type LoginLog struct {
	gorm.Model
	UserID    uint       `json:"user_id"`
	Username  string     `json:"username" gorm:"size:30"`
	SessionID string     `json:"session_id" gorm:"size:40;index"`
	IPAddress string     `json:"ip_address" gorm:"size:45"`
	UserAgent string     `json:"user_agent"`
	LogoutAt  *time.Time `json:"logout_at"`
}
