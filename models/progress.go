package models

import "time"

// ProgressRecord marks one lesson as completed (or not) for one user.
// Progress is keyed by user and never shared across users.
type ProgressRecord struct {
	UserID    string    `gorm:"primaryKey" json:"userId"`
	LessonID  string    `gorm:"primaryKey" json:"lessonId"`
	Completed bool      `json:"completed"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ProgressRecord) TableName() string { return "lesson_progress" }
