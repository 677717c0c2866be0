package model

// Lesson belongs to one language. OrderIndex positions it within the
// language track and drives unlock gating; uniqueness is assumed, not enforced.
// swagger:model Lesson
type Lesson struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	LanguageID  uint   `gorm:"index;not null" json:"languageId"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Level       string `gorm:"size:32;not null" json:"level"`
	OrderIndex  int    `gorm:"index;not null" json:"orderIndex"`
}

func (Lesson) TableName() string {
	return "lessons"
}
