package model

import "time"

// AttemptRecord 每次提交练习答案追加一行，不去重也不更新
// swagger:model AttemptRecord
type AttemptRecord struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"index:idx_attempt_user_lesson;not null" json:"userId"`
	LessonID    uint      `gorm:"index:idx_attempt_user_lesson;not null" json:"lessonId"`
	ExerciseID  uint      `gorm:"index;not null" json:"exerciseId"`
	IsCorrect   bool      `gorm:"not null" json:"isCorrect"`
	CompletedAt time.Time `gorm:"not null" json:"completedAt"`
}

func (AttemptRecord) TableName() string {
	return "exercise_attempts"
}
