package service

import (
	"language_tutor_backend/internal/config"
	"language_tutor_backend/internal/model"
	"language_tutor_backend/internal/repository"
	"language_tutor_backend/pkg/database"
	"testing"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return openTestDB(t, database.MemoryPath)
}

// openTestDB 打开并迁移 path 处的 sqlite 库，测试结束时关闭
func openTestDB(t *testing.T, path string) *gorm.DB {
	t.Helper()
	db, err := database.Open(&config.DatabaseConfig{Driver: "sqlite", Path: path, LogLevel: "silent"})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

type fixture struct {
	db       *gorm.DB
	progress *ProgressService
	catalog  *CatalogService
	spanish  model.Language
	lessons  []model.Lesson
	exercise model.Exercise
}

// newFixture 创建一门含 3 节课的语言和一道属于第 1 课的练习
func newFixture(t *testing.T, cfg config.ProgressConfig) *fixture {
	t.Helper()
	return newFixtureOn(t, newTestDB(t), cfg)
}

func newFixtureOn(t *testing.T, db *gorm.DB, cfg config.ProgressConfig) *fixture {
	t.Helper()

	spanish := model.Language{Name: "Spanish", Code: "es", Flag: "es"}
	if err := db.Create(&spanish).Error; err != nil {
		t.Fatalf("create language: %v", err)
	}
	lessons := []model.Lesson{
		{LanguageID: spanish.ID, Title: "Greetings", Level: "beginner", OrderIndex: 1},
		{LanguageID: spanish.ID, Title: "Numbers", Level: "beginner", OrderIndex: 2},
		{LanguageID: spanish.ID, Title: "Phrases", Level: "beginner", OrderIndex: 3},
	}
	if err := db.Create(&lessons).Error; err != nil {
		t.Fatalf("create lessons: %v", err)
	}
	exercise := model.Exercise{LessonID: lessons[0].ID, Type: model.ExerciseTranslate, Question: "Hello?", CorrectAnswer: "Hola", Difficulty: 1}
	if err := db.Create(&exercise).Error; err != nil {
		t.Fatalf("create exercise: %v", err)
	}

	languageRepo := repository.NewLanguageRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)

	return &fixture{
		db: db,
		progress: NewProgressService(
			languageRepo,
			lessonRepo,
			exerciseRepo,
			repository.NewCompletionRepository(db),
			repository.NewAttemptRepository(db),
			cfg,
		),
		catalog:  NewCatalogService(languageRepo, lessonRepo, exerciseRepo),
		spanish:  spanish,
		lessons:  lessons,
		exercise: exercise,
	}
}
