package service

import (
	"context"
	"errors"
	"language_tutor_backend/internal/config"
	"language_tutor_backend/internal/model"
	"language_tutor_backend/internal/util"
	"testing"
)

func lessonsWithIndexes(indexes ...int) []model.Lesson {
	lessons := make([]model.Lesson, len(indexes))
	for i, idx := range indexes {
		lessons[i] = model.Lesson{ID: uint(i + 1), OrderIndex: idx}
	}
	return lessons
}

func statuses(progress []model.LessonProgress) []model.LessonStatus {
	out := make([]model.LessonStatus, len(progress))
	for i, p := range progress {
		out[i] = p.Status
	}
	return out
}

func set(ids ...uint) map[uint]bool {
	m := make(map[uint]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

func TestEvaluateLessons(t *testing.T) {
	const (
		locked     = model.LessonLocked
		available  = model.LessonAvailable
		inProgress = model.LessonInProgress
		completed  = model.LessonCompleted
	)

	tests := []struct {
		name      string
		lessons   []model.Lesson
		completed map[uint]bool
		attempted map[uint]bool
		want      []model.LessonStatus
	}{
		{
			name:    "no records",
			lessons: lessonsWithIndexes(1, 2, 3),
			want:    []model.LessonStatus{available, locked, locked},
		},
		{
			name:      "first lesson completed unlocks second",
			lessons:   lessonsWithIndexes(1, 2, 3),
			completed: set(1),
			want:      []model.LessonStatus{completed, available, locked},
		},
		{
			name:      "attempts on unlocked lesson mark it in progress",
			lessons:   lessonsWithIndexes(1, 2, 3),
			completed: set(1),
			attempted: set(2),
			want:      []model.LessonStatus{completed, inProgress, locked},
		},
		{
			name:      "completion wins over attempts",
			lessons:   lessonsWithIndexes(1, 2, 3),
			completed: set(1, 2),
			attempted: set(1, 2),
			want:      []model.LessonStatus{completed, completed, available},
		},
		{
			name:      "completion of later lesson without predecessor",
			lessons:   lessonsWithIndexes(1, 2, 3),
			completed: set(3),
			want:      []model.LessonStatus{available, locked, completed},
		},
		{
			name:      "gap in ordering keeps following lesson locked",
			lessons:   lessonsWithIndexes(1, 2, 4),
			completed: set(1, 2),
			want:      []model.LessonStatus{completed, completed, locked},
		},
		{
			name:    "lowest index is first even when not 1",
			lessons: lessonsWithIndexes(5, 6),
			want:    []model.LessonStatus{available, locked},
		},
		{
			name:      "started first lesson",
			lessons:   lessonsWithIndexes(1, 2),
			attempted: set(1),
			want:      []model.LessonStatus{inProgress, locked},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statuses(EvaluateLessons(tt.lessons, tt.completed, tt.attempted))
			if len(got) != len(tt.want) {
				t.Fatalf("got %d statuses, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("EvaluateLessons() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestEvaluateLessonsEmpty(t *testing.T) {
	got := EvaluateLessons(nil, nil, nil)
	if got == nil || len(got) != 0 {
		t.Errorf("EvaluateLessons(nil) = %#v, want empty non-nil slice", got)
	}
}

func TestEvaluateLessonsFirstNeverLocked(t *testing.T) {
	lessons := lessonsWithIndexes(1, 2, 3)
	cases := []map[uint]bool{nil, set(2), set(3), set(2, 3)}
	for _, completed := range cases {
		for _, attempted := range cases {
			got := EvaluateLessons(lessons, completed, attempted)
			if got[0].Status == model.LessonLocked {
				t.Errorf("first lesson locked with completed=%v attempted=%v", completed, attempted)
			}
		}
	}
}

func TestEvaluateLessonsKeepsRawFlags(t *testing.T) {
	got := EvaluateLessons(lessonsWithIndexes(1, 2), set(1), set(1))
	first := got[0]
	if !first.Completed || !first.Started || !first.Available {
		t.Errorf("first lesson flags = %+v, want completed, started and available", first)
	}
	if !got[1].Available || got[1].Started || got[1].Completed {
		t.Errorf("second lesson flags = %+v, want only available", got[1])
	}
}

func TestGetProgressScenarios(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, config.ProgressConfig{})
	const user = uint(42)

	progress, err := f.progress.GetProgress(ctx, user, f.spanish.ID)
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if progress.TotalLessons != 3 || progress.CompletedLessons != 0 {
		t.Errorf("counts = %d/%d, want 3/0", progress.TotalLessons, progress.CompletedLessons)
	}
	assertStatuses(t, progress, model.LessonAvailable, model.LessonLocked, model.LessonLocked)

	if _, err := f.progress.CompleteLesson(ctx, user, f.lessons[0].ID); err != nil {
		t.Fatalf("CompleteLesson: %v", err)
	}
	progress, err = f.progress.GetProgress(ctx, user, f.spanish.ID)
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if progress.CompletedLessons != 1 {
		t.Errorf("completedLessons = %d, want 1", progress.CompletedLessons)
	}
	assertStatuses(t, progress, model.LessonCompleted, model.LessonAvailable, model.LessonLocked)

	_, err = f.progress.RecordAttempt(ctx, user, AttemptRequest{LessonID: f.lessons[1].ID, ExerciseID: f.exercise.ID})
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	progress, err = f.progress.GetProgress(ctx, user, f.spanish.ID)
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	assertStatuses(t, progress, model.LessonCompleted, model.LessonInProgress, model.LessonLocked)

	// 其他用户不受影响
	other, err := f.progress.GetProgress(ctx, user+1, f.spanish.ID)
	if err != nil {
		t.Fatalf("GetProgress other: %v", err)
	}
	assertStatuses(t, other, model.LessonAvailable, model.LessonLocked, model.LessonLocked)
}

func assertStatuses(t *testing.T, progress *model.LanguageProgress, want ...model.LessonStatus) {
	t.Helper()
	if len(progress.Lessons) != len(want) {
		t.Fatalf("lessons = %d, want %d", len(progress.Lessons), len(want))
	}
	for i, w := range want {
		if progress.Lessons[i].Status != w {
			t.Errorf("lesson %d status = %s, want %s", progress.Lessons[i].LessonID, progress.Lessons[i].Status, w)
		}
	}
}

func TestGetProgressLanguageWithoutLessons(t *testing.T) {
	f := newFixture(t, config.ProgressConfig{})
	empty := model.Language{Name: "Italian", Code: "it", Flag: "it"}
	if err := f.db.Create(&empty).Error; err != nil {
		t.Fatalf("create language: %v", err)
	}

	progress, err := f.progress.GetProgress(context.Background(), 1, empty.ID)
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if progress.TotalLessons != 0 || progress.CompletedLessons != 0 || len(progress.Lessons) != 0 {
		t.Errorf("progress = %+v, want empty", progress)
	}
}

func TestGetProgressUnknownLanguage(t *testing.T) {
	f := newFixture(t, config.ProgressConfig{})
	_, err := f.progress.GetProgress(context.Background(), 1, 9999)
	if !errors.Is(err, util.ErrLanguageNotFound) {
		t.Errorf("err = %v, want ErrLanguageNotFound", err)
	}
}

func TestCompleteLessonIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, config.ProgressConfig{})
	lessonID := f.lessons[0].ID

	first, err := f.progress.CompleteLesson(ctx, 1, lessonID)
	if err != nil {
		t.Fatalf("first CompleteLesson: %v", err)
	}
	if first.AlreadyCompleted {
		t.Error("first completion reported as already completed")
	}

	second, err := f.progress.CompleteLesson(ctx, 1, lessonID)
	if err != nil {
		t.Fatalf("second CompleteLesson: %v", err)
	}
	if !second.AlreadyCompleted {
		t.Error("second completion not reported as already completed")
	}
	if !second.CompletedAt.Equal(first.CompletedAt) {
		t.Errorf("completedAt changed on repeat: %v -> %v", first.CompletedAt, second.CompletedAt)
	}

	var count int64
	f.db.Model(&model.CompletionRecord{}).Where("user_id = ? AND lesson_id = ?", 1, lessonID).Count(&count)
	if count != 1 {
		t.Errorf("completion rows = %d, want 1", count)
	}
}

func TestCompleteLessonUnknownLesson(t *testing.T) {
	f := newFixture(t, config.ProgressConfig{})
	_, err := f.progress.CompleteLesson(context.Background(), 1, 9999)
	if !errors.Is(err, util.ErrLessonNotFound) {
		t.Errorf("err = %v, want ErrLessonNotFound", err)
	}

	var count int64
	f.db.Model(&model.CompletionRecord{}).Count(&count)
	if count != 0 {
		t.Errorf("completion rows = %d, want 0", count)
	}
}

func TestRecordAttemptAppends(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, config.ProgressConfig{})
	req := AttemptRequest{LessonID: f.lessons[0].ID, ExerciseID: f.exercise.ID, IsCorrect: true}

	const n = 3
	for i := 0; i < n; i++ {
		if _, err := f.progress.RecordAttempt(ctx, 1, req); err != nil {
			t.Fatalf("RecordAttempt %d: %v", i, err)
		}
	}

	records, err := f.progress.ListAttempts(ctx, 1, req.LessonID)
	if err != nil {
		t.Fatalf("ListAttempts: %v", err)
	}
	if len(records) != n {
		t.Errorf("attempt rows = %d, want %d", len(records), n)
	}
	for i := 1; i < len(records); i++ {
		if records[i].ID <= records[i-1].ID {
			t.Errorf("attempts not in submission order: %+v", records)
		}
	}

	if _, err := f.progress.ListAttempts(ctx, 1, 9999); !errors.Is(err, util.ErrLessonNotFound) {
		t.Errorf("ListAttempts unknown lesson error = %v", err)
	}
}

func TestRecordAttemptTrustsReferencesByDefault(t *testing.T) {
	f := newFixture(t, config.ProgressConfig{})
	_, err := f.progress.RecordAttempt(context.Background(), 1, AttemptRequest{LessonID: f.lessons[2].ID, ExerciseID: 9999})
	if err != nil {
		t.Errorf("RecordAttempt with unknown exercise = %v, want nil", err)
	}
}

func TestRecordAttemptVerifiesReferences(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, config.ProgressConfig{VerifyAttemptRefs: true})

	tests := []struct {
		name string
		req  AttemptRequest
		want error
	}{
		{"matching", AttemptRequest{LessonID: f.lessons[0].ID, ExerciseID: f.exercise.ID}, nil},
		{"unknown exercise", AttemptRequest{LessonID: f.lessons[0].ID, ExerciseID: 9999}, util.ErrExerciseNotFound},
		{"wrong lesson", AttemptRequest{LessonID: f.lessons[1].ID, ExerciseID: f.exercise.ID}, util.ErrExerciseLessonMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.progress.RecordAttempt(ctx, 1, tt.req)
			if !errors.Is(err, tt.want) {
				t.Errorf("RecordAttempt() error = %v, want %v", err, tt.want)
			}
		})
	}
}
