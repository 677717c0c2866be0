package repository

import (
	"context"
	"language_tutor_backend/internal/model"

	"gorm.io/gorm"
)

type ExerciseRepository struct {
	DB *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{DB: db}
}

func (r *ExerciseRepository) WithContext(ctx context.Context) *ExerciseRepository {
	return &ExerciseRepository{DB: r.DB.WithContext(ctx)}
}

func (r *ExerciseRepository) FindByLesson(lessonID uint) ([]model.Exercise, error) {
	var exercises []model.Exercise
	err := r.DB.Where("lesson_id = ?", lessonID).
		Order("difficulty ASC").
		Order("id ASC").
		Find(&exercises).Error
	return exercises, err
}

func (r *ExerciseRepository) FindByID(id uint) (*model.Exercise, error) {
	var exercise model.Exercise
	err := r.DB.First(&exercise, id).Error
	return &exercise, err
}
