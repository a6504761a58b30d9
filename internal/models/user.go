package models

import (
	"time"
)

// User はユーザーモデル
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:100;not null"`
	CreatedAt    time.Time `json:"created_at"`
}
