package service

import (
	"fmt"
	"language_tutor_backend/internal/model"
	"strings"
)

// swagger:model ExplainRequest
type ExplainRequest struct {
	ExerciseID uint   `json:"exerciseId" binding:"required"`
	UserAnswer string `json:"userAnswer"`
}

type Explanation struct {
	ExerciseID  uint   `json:"exerciseId"`
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation"`
}

type ExplanationService struct {
	catalog *CatalogService
}

func NewExplanationService(catalog *CatalogService) *ExplanationService {
	return &ExplanationService{catalog: catalog}
}

func (s *ExplanationService) Explain(req ExplainRequest) (*Explanation, error) {
	exercise, err := s.catalog.GetExercise(req.ExerciseID)
	if err != nil {
		return nil, err
	}
	return ExplainAnswer(exercise, req.UserAnswer), nil
}

// AnswersMatch 忽略大小写和首尾空白比较答案
func AnswersMatch(answer, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(correct))
}

func ExplainAnswer(exercise *model.Exercise, userAnswer string) *Explanation {
	correct := AnswersMatch(userAnswer, exercise.CorrectAnswer)

	var text string
	if correct {
		text = fmt.Sprintf("Correct! %q is the right answer. %s", strings.TrimSpace(userAnswer), hintFor(exercise.Type))
	} else {
		text = fmt.Sprintf("The correct answer is %q. %s", exercise.CorrectAnswer, hintFor(exercise.Type))
	}

	return &Explanation{
		ExerciseID:  exercise.ID,
		Correct:     correct,
		Explanation: text,
	}
}

func hintFor(t model.ExerciseType) string {
	switch t {
	case model.ExerciseTranslate:
		return "When translating, pay attention to word order and verb conjugation, which can differ between languages."
	case model.ExerciseMultipleChoice:
		return "Multiple choice questions test your recognition of vocabulary and phrases in context."
	default:
		return "Practice makes perfect! Keep reviewing this concept to reinforce your learning."
	}
}
