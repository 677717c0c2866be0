package repository

import (
	"context"
	"language_tutor_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompletionRepository struct {
	DB *gorm.DB
}

func NewCompletionRepository(db *gorm.DB) *CompletionRepository {
	return &CompletionRepository{DB: db}
}

func (r *CompletionRepository) WithContext(ctx context.Context) *CompletionRepository {
	return &CompletionRepository{DB: r.DB.WithContext(ctx)}
}

// CreateIfAbsent 插入完成记录；(user_id, lesson_id) 已存在时什么也不做。
// created 表示本次是否真正写入了新行，已有记录的时间戳保持不变。
func (r *CompletionRepository) CreateIfAbsent(userID, lessonID uint, completedAt time.Time) (bool, error) {
	record := &model.CompletionRecord{
		UserID:      userID,
		LessonID:    lessonID,
		CompletedAt: completedAt,
	}

	result := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(record)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *CompletionRepository) Find(userID, lessonID uint) (*model.CompletionRecord, error) {
	var record model.CompletionRecord
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&record).Error
	return &record, err
}

func (r *CompletionRepository) Count(userID, lessonID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.CompletionRecord{}).
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		Count(&count).Error
	return count, err
}

// CompletedLessonIDs 返回用户在给定课程中已完成的课程集合
func (r *CompletionRepository) CompletedLessonIDs(userID uint, lessonIDs []uint) (map[uint]bool, error) {
	completed := make(map[uint]bool)
	if len(lessonIDs) == 0 {
		return completed, nil
	}

	var ids []uint
	err := r.DB.Model(&model.CompletionRecord{}).
		Where("user_id = ? AND lesson_id IN ?", userID, lessonIDs).
		Pluck("lesson_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		completed[id] = true
	}
	return completed, nil
}
