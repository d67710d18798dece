package models

import "gorm.io/gorm"

type ChatMessage struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null" json:"user_id"`
	Role    string `gorm:"size:16" json:"role"` // "user" | "assistant"
	Content string `gorm:"type:text" json:"content"`
}
