package model

import "gorm.io/datatypes"

type ExerciseType string

const (
	ExerciseTranslate      ExerciseType = "translate"
	ExerciseMultipleChoice ExerciseType = "multiple_choice"
)

// swagger:model Exercise
type Exercise struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	LessonID      uint           `gorm:"index;not null" json:"lessonId"`
	Type          ExerciseType   `gorm:"size:32;not null" json:"type"`
	Question      string         `gorm:"type:text;not null" json:"question"`
	Options       datatypes.JSON `json:"options"` // 选择题选项，JSON 数组；翻译题为 null
	CorrectAnswer string         `gorm:"size:255;not null" json:"correctAnswer"`
	Difficulty    int            `gorm:"not null;default:1" json:"difficulty"`
	ImageURL      *string        `gorm:"size:255" json:"imageUrl"`
}

func (Exercise) TableName() string {
	return "exercises"
}
