package database

import (
	"language_tutor_backend/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type seedLesson struct {
	Language    string
	Title       string
	Description string
	Order       int
}

type seedExercise struct {
	Lesson        string
	Type          model.ExerciseType
	Question      string
	Options       string
	CorrectAnswer string
	Difficulty    int
}

var seedLanguages = []model.Language{
	{Name: "Spanish", Code: "es", Flag: "🇪🇸"},
	{Name: "French", Code: "fr", Flag: "🇫🇷"},
	{Name: "German", Code: "de", Flag: "🇩🇪"},
}

var seedLessons = []seedLesson{
	{"es", "Greetings and Introductions", "Learn basic Spanish greetings and how to introduce yourself.", 1},
	{"es", "Numbers and Counting", "Learn to count and use numbers in Spanish.", 2},
	{"es", "Common Phrases", "Essential phrases for everyday conversations.", 3},
	{"fr", "Basic Greetings", "Learn how to greet people in French.", 1},
	{"fr", "Introducing Yourself", "Learn to introduce yourself and ask basic questions.", 2},
	{"fr", "Food and Dining", "Vocabulary for ordering food and dining out.", 3},
	{"de", "First Conversations", "Basic German phrases for your first conversations.", 1},
	{"de", "Numbers and Time", "Learn to count and tell time in German.", 2},
	{"de", "Daily Routines", "Vocabulary for describing your daily activities.", 3},
}

var seedExercises = []seedExercise{
	{"Greetings and Introductions", model.ExerciseTranslate, `How do you say "Hello" in Spanish?`, "", "Hola", 1},
	{"Greetings and Introductions", model.ExerciseMultipleChoice, `Which phrase means "Good morning" in Spanish?`, `["Buenos días", "Buenas noches", "Buenas tardes", "Adiós"]`, "Buenos días", 1},
	{"Greetings and Introductions", model.ExerciseTranslate, `Translate: "My name is John"`, "", "Me llamo John", 2},
	{"Numbers and Counting", model.ExerciseMultipleChoice, `What is the number "five" in Spanish?`, `["Cinco", "Tres", "Siete", "Ocho"]`, "Cinco", 1},
	{"Numbers and Counting", model.ExerciseTranslate, "Translate the number 10 to Spanish", "", "Diez", 1},
	{"Basic Greetings", model.ExerciseTranslate, `How do you say "Hello" in French?`, "", "Bonjour", 1},
	{"Basic Greetings", model.ExerciseMultipleChoice, `Which phrase means "Good evening" in French?`, `["Bonsoir", "Bonjour", "Au revoir", "Merci"]`, "Bonsoir", 1},
	{"Introducing Yourself", model.ExerciseTranslate, `Translate: "My name is Marie"`, "", "Je m'appelle Marie", 2},
	{"Food and Dining", model.ExerciseMultipleChoice, `How do you say "water" in French?`, `["L'eau", "Le pain", "Le vin", "La table"]`, "L'eau", 1},
	{"First Conversations", model.ExerciseTranslate, `How do you say "Hello" in German?`, "", "Hallo", 1},
	{"First Conversations", model.ExerciseMultipleChoice, `Which phrase means "Good day" in German?`, `["Guten Tag", "Gute Nacht", "Auf Wiedersehen", "Danke"]`, "Guten Tag", 1},
	{"Numbers and Time", model.ExerciseTranslate, "Translate the number 3 to German", "", "Drei", 1},
	{"Daily Routines", model.ExerciseMultipleChoice, `How do you say "breakfast" in German?`, `["Frühstück", "Mittagessen", "Abendessen", "Kaffee"]`, "Frühstück", 2},
}

// Seed 写入语言、课程和练习的初始数据。每张表只在为空时写入，可重复调用。
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Language{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			languages := make([]model.Language, len(seedLanguages))
			copy(languages, seedLanguages)
			if err := tx.Create(&languages).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&model.Lesson{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			var languages []model.Language
			if err := tx.Find(&languages).Error; err != nil {
				return err
			}
			languageIDs := make(map[string]uint, len(languages))
			for _, l := range languages {
				languageIDs[l.Code] = l.ID
			}

			lessons := make([]model.Lesson, 0, len(seedLessons))
			for _, s := range seedLessons {
				languageID, ok := languageIDs[s.Language]
				if !ok {
					continue
				}
				lessons = append(lessons, model.Lesson{
					LanguageID:  languageID,
					Title:       s.Title,
					Description: s.Description,
					Level:       "beginner",
					OrderIndex:  s.Order,
				})
			}
			if len(lessons) > 0 {
				if err := tx.Create(&lessons).Error; err != nil {
					return err
				}
			}
		}

		if err := tx.Model(&model.Exercise{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			var lessons []model.Lesson
			if err := tx.Find(&lessons).Error; err != nil {
				return err
			}
			lessonIDs := make(map[string]uint, len(lessons))
			for _, l := range lessons {
				lessonIDs[l.Title] = l.ID
			}

			exercises := make([]model.Exercise, 0, len(seedExercises))
			for _, s := range seedExercises {
				lessonID, ok := lessonIDs[s.Lesson]
				if !ok {
					continue
				}
				options := datatypes.JSON("null")
				if s.Options != "" {
					options = datatypes.JSON(s.Options)
				}
				exercises = append(exercises, model.Exercise{
					LessonID:      lessonID,
					Type:          s.Type,
					Question:      s.Question,
					Options:       options,
					CorrectAnswer: s.CorrectAnswer,
					Difficulty:    s.Difficulty,
				})
			}
			if len(exercises) > 0 {
				if err := tx.Create(&exercises).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
}
