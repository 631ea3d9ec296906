package models

import (
	"time"
)

// Task is a user-created to-do item. Description and Category hold the
// AI-enhanced values after creation; the caller's originals are not kept.
type Task struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:text" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"type:text" json:"category"`
	DueDate     LocalTime `gorm:"type:datetime" json:"dueDate"`
	IsCompleted bool      `gorm:"default:false" json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UserID      string    `gorm:"type:varchar(50);index" json:"userId"`
	Version     int       `gorm:"default:1" json:"-"` // optimistic lock counter
}
