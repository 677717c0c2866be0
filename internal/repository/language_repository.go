package repository

import (
	"context"
	"language_tutor_backend/internal/model"

	"gorm.io/gorm"
)

type LanguageRepository struct {
	DB *gorm.DB
}

func NewLanguageRepository(db *gorm.DB) *LanguageRepository {
	return &LanguageRepository{DB: db}
}

func (r *LanguageRepository) WithContext(ctx context.Context) *LanguageRepository {
	return &LanguageRepository{DB: r.DB.WithContext(ctx)}
}

func (r *LanguageRepository) FindAll() ([]model.Language, error) {
	var languages []model.Language
	err := r.DB.Order("id ASC").Find(&languages).Error
	return languages, err
}

func (r *LanguageRepository) FindByID(id uint) (*model.Language, error) {
	var language model.Language
	err := r.DB.First(&language, id).Error
	return &language, err
}
