package models

import (
	"time"
)

// Log はログ（日記エントリ）モデル
type Log struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"size:100;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Mood      string    `json:"mood" gorm:"size:20"`
	Timestamp time.Time `json:"timestamp"`

	// リレーション
	User *User `json:"-" gorm:"foreignKey:UserID"`
	Tags []Tag `json:"tags" gorm:"many2many:log_tags;constraint:OnDelete:CASCADE"`
}

// LogTag はログとタグの中間テーブル
type LogTag struct {
	LogID uint `gorm:"primaryKey"`
	TagID uint `gorm:"primaryKey"`
}

// TableName テーブル名指定
func (LogTag) TableName() string {
	return "log_tags"
}
