package service

import (
	"errors"
	"language_tutor_backend/internal/config"
	"language_tutor_backend/internal/model"
	"language_tutor_backend/internal/util"
	"strings"
	"testing"
)

func TestAnswersMatch(t *testing.T) {
	tests := []struct {
		answer, correct string
		want            bool
	}{
		{"Hola", "Hola", true},
		{"  hola ", "Hola", true},
		{"HOLA", "hola", true},
		{"Adiós", "Hola", false},
		{"", "Hola", false},
	}
	for _, tt := range tests {
		if got := AnswersMatch(tt.answer, tt.correct); got != tt.want {
			t.Errorf("AnswersMatch(%q, %q) = %v, want %v", tt.answer, tt.correct, got, tt.want)
		}
	}
}

func TestExplainAnswer(t *testing.T) {
	exercise := &model.Exercise{ID: 7, Type: model.ExerciseMultipleChoice, CorrectAnswer: "Gracias"}

	right := ExplainAnswer(exercise, "gracias")
	if !right.Correct || !strings.HasPrefix(right.Explanation, "Correct!") {
		t.Errorf("right answer explanation = %+v", right)
	}
	if !strings.Contains(right.Explanation, "Multiple choice") {
		t.Errorf("explanation missing type hint: %q", right.Explanation)
	}

	wrong := ExplainAnswer(exercise, "Hola")
	if wrong.Correct {
		t.Error("wrong answer marked correct")
	}
	if !strings.Contains(wrong.Explanation, `"Gracias"`) {
		t.Errorf("explanation should state the correct answer: %q", wrong.Explanation)
	}
}

func TestExplainUnknownExercise(t *testing.T) {
	f := newFixture(t, config.ProgressConfig{})
	s := NewExplanationService(f.catalog)

	if _, err := s.Explain(ExplainRequest{ExerciseID: 9999}); !errors.Is(err, util.ErrExerciseNotFound) {
		t.Errorf("Explain() error = %v, want ErrExerciseNotFound", err)
	}

	got, err := s.Explain(ExplainRequest{ExerciseID: f.exercise.ID, UserAnswer: "hola"})
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if !got.Correct {
		t.Errorf("Explain() = %+v, want correct", got)
	}
}
