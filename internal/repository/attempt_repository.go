package repository

import (
	"context"
	"language_tutor_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) WithContext(ctx context.Context) *AttemptRepository {
	return &AttemptRepository{DB: r.DB.WithContext(ctx)}
}

// Create 追加一条作答记录，从不更新已有行
func (r *AttemptRepository) Create(record *model.AttemptRecord) error {
	return r.DB.Create(record).Error
}

// AttemptedLessonIDs 返回用户至少作答过一次的课程集合
func (r *AttemptRepository) AttemptedLessonIDs(userID uint, lessonIDs []uint) (map[uint]bool, error) {
	attempted := make(map[uint]bool)
	if len(lessonIDs) == 0 {
		return attempted, nil
	}

	var ids []uint
	err := r.DB.Model(&model.AttemptRecord{}).
		Where("user_id = ? AND lesson_id IN ?", userID, lessonIDs).
		Distinct().
		Pluck("lesson_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		attempted[id] = true
	}
	return attempted, nil
}

func (r *AttemptRepository) FindByUserLesson(userID, lessonID uint) ([]model.AttemptRecord, error) {
	var records []model.AttemptRecord
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		Order("id ASC").
		Find(&records).Error
	return records, err
}
