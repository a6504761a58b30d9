package models

// Tag はタグモデル。名前はユーザーをまたいでグローバルに一意
type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:50;not null"`
}
