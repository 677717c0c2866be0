package model

import "time"

// CompletionRecord marks that a user finished a lesson. At most one row
// exists per (user, lesson); the unique index is the concurrency guard.
// swagger:model CompletionRecord
type CompletionRecord struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"uniqueIndex:idx_completion_user_lesson;not null" json:"userId"`
	LessonID    uint      `gorm:"uniqueIndex:idx_completion_user_lesson;not null" json:"lessonId"`
	CompletedAt time.Time `gorm:"not null" json:"completedAt"`
}

func (CompletionRecord) TableName() string {
	return "completed_lessons"
}
