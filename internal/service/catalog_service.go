package service

import (
	"language_tutor_backend/internal/model"
	"language_tutor_backend/internal/repository"
	"language_tutor_backend/internal/util"
)

// CatalogService 语言、课程、练习的只读查询
type CatalogService struct {
	languageRepo *repository.LanguageRepository
	lessonRepo   *repository.LessonRepository
	exerciseRepo *repository.ExerciseRepository
}

func NewCatalogService(
	languageRepo *repository.LanguageRepository,
	lessonRepo *repository.LessonRepository,
	exerciseRepo *repository.ExerciseRepository,
) *CatalogService {
	return &CatalogService{
		languageRepo: languageRepo,
		lessonRepo:   lessonRepo,
		exerciseRepo: exerciseRepo,
	}
}

func (s *CatalogService) ListLanguages() ([]model.Language, error) {
	languages, err := s.languageRepo.FindAll()
	if err != nil {
		return nil, storageError("list languages", err)
	}
	return languages, nil
}

func (s *CatalogService) GetLanguage(id uint) (*model.Language, error) {
	language, err := s.languageRepo.FindByID(id)
	if err != nil {
		return nil, lookupError("get language", err, util.ErrLanguageNotFound)
	}
	return language, nil
}

func (s *CatalogService) ListLessons(languageID uint) ([]model.Lesson, error) {
	lessons, err := s.lessonRepo.FindByLanguage(languageID)
	if err != nil {
		return nil, storageError("list lessons", err)
	}
	return lessons, nil
}

func (s *CatalogService) GetLesson(id uint) (*model.Lesson, error) {
	lesson, err := s.lessonRepo.FindByID(id)
	if err != nil {
		return nil, lookupError("get lesson", err, util.ErrLessonNotFound)
	}
	return lesson, nil
}

func (s *CatalogService) ListExercises(lessonID uint) ([]model.Exercise, error) {
	exercises, err := s.exerciseRepo.FindByLesson(lessonID)
	if err != nil {
		return nil, storageError("list exercises", err)
	}
	return exercises, nil
}

func (s *CatalogService) GetExercise(id uint) (*model.Exercise, error) {
	exercise, err := s.exerciseRepo.FindByID(id)
	if err != nil {
		return nil, lookupError("get exercise", err, util.ErrExerciseNotFound)
	}
	return exercise, nil
}
