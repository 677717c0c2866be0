package repository

import (
	"context"
	"language_tutor_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

// WithContext 返回绑定 ctx 的副本，查询随 ctx 取消并继承其中的 trace
func (r *LessonRepository) WithContext(ctx context.Context) *LessonRepository {
	return &LessonRepository{DB: r.DB.WithContext(ctx)}
}

// FindByLanguage 按 order_index 升序返回语言下的全部课程
func (r *LessonRepository) FindByLanguage(languageID uint) ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.Where("language_id = ?", languageID).
		Order("order_index ASC").
		Order("id ASC").
		Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepository) FindByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, id).Error
	return &lesson, err
}
