package service

import (
	"context"
	"language_tutor_backend/internal/config"
	"language_tutor_backend/internal/model"
	"language_tutor_backend/internal/repository"
	"language_tutor_backend/internal/util"
	"language_tutor_backend/pkg/logger"
	"language_tutor_backend/pkg/monitoring"
	"language_tutor_backend/pkg/tracing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ProgressService 课程进度：状态计算、完成记录、作答记录
type ProgressService struct {
	languageRepo   *repository.LanguageRepository
	lessonRepo     *repository.LessonRepository
	exerciseRepo   *repository.ExerciseRepository
	completionRepo *repository.CompletionRepository
	attemptRepo    *repository.AttemptRepository
	cfg            config.ProgressConfig
	now            func() time.Time
}

func NewProgressService(
	languageRepo *repository.LanguageRepository,
	lessonRepo *repository.LessonRepository,
	exerciseRepo *repository.ExerciseRepository,
	completionRepo *repository.CompletionRepository,
	attemptRepo *repository.AttemptRepository,
	cfg config.ProgressConfig,
) *ProgressService {
	return &ProgressService{
		languageRepo:   languageRepo,
		lessonRepo:     lessonRepo,
		exerciseRepo:   exerciseRepo,
		completionRepo: completionRepo,
		attemptRepo:    attemptRepo,
		cfg:            cfg,
		now:            time.Now,
	}
}

// swagger:model AttemptRequest
type AttemptRequest struct {
	LessonID   uint `json:"lessonId" binding:"required"`
	ExerciseID uint `json:"exerciseId" binding:"required"`
	IsCorrect  bool `json:"isCorrect"`
}

// EvaluateLessons derives a status for every lesson. lessons must be sorted by
// OrderIndex ascending. The first lesson (lowest index) is always unlocked;
// any other lesson unlocks only when the lesson at exactly OrderIndex-1 is
// completed, so a gap in the ordering keeps everything after it locked.
func EvaluateLessons(lessons []model.Lesson, completed, attempted map[uint]bool) []model.LessonProgress {
	result := make([]model.LessonProgress, 0, len(lessons))
	if len(lessons) == 0 {
		return result
	}

	byIndex := make(map[int]uint, len(lessons))
	for _, l := range lessons {
		if _, ok := byIndex[l.OrderIndex]; !ok {
			byIndex[l.OrderIndex] = l.ID
		}
	}
	firstIndex := lessons[0].OrderIndex

	for _, l := range lessons {
		p := model.LessonProgress{
			LessonID:   l.ID,
			OrderIndex: l.OrderIndex,
			Completed:  completed[l.ID],
			Started:    attempted[l.ID],
		}

		if l.OrderIndex == firstIndex {
			p.Available = true
		} else if prevID, ok := byIndex[l.OrderIndex-1]; ok && completed[prevID] {
			p.Available = true
		}

		switch {
		case p.Completed:
			p.Status = model.LessonCompleted
		case p.Started:
			p.Status = model.LessonInProgress
		case p.Available:
			p.Status = model.LessonAvailable
		default:
			p.Status = model.LessonLocked
		}

		result = append(result, p)
	}
	return result
}

// GetProgress 每次读取时重新计算解锁状态，不做缓存
func (s *ProgressService) GetProgress(ctx context.Context, userID, languageID uint) (*model.LanguageProgress, error) {
	ctx, span := tracing.Tracer.Start(ctx, "ProgressService.GetProgress")
	defer span.End()
	span.SetAttributes(attribute.Int("user.id", int(userID)), attribute.Int("language.id", int(languageID)))

	if _, err := s.languageRepo.WithContext(ctx).FindByID(languageID); err != nil {
		return nil, lookupError("get language", err, util.ErrLanguageNotFound)
	}

	lessons, err := s.lessonRepo.WithContext(ctx).FindByLanguage(languageID)
	if err != nil {
		return nil, storageError("list lessons", err)
	}

	lessonIDs := make([]uint, len(lessons))
	for i, l := range lessons {
		lessonIDs[i] = l.ID
	}

	completed, err := s.completionRepo.WithContext(ctx).CompletedLessonIDs(userID, lessonIDs)
	if err != nil {
		return nil, storageError("load completions", err)
	}

	attempted, err := s.attemptRepo.WithContext(ctx).AttemptedLessonIDs(userID, lessonIDs)
	if err != nil {
		return nil, storageError("load attempts", err)
	}

	return &model.LanguageProgress{
		LanguageID:       languageID,
		TotalLessons:     len(lessons),
		CompletedLessons: len(completed),
		Lessons:          EvaluateLessons(lessons, completed, attempted),
	}, nil
}

// CompleteLesson 幂等：已完成的课程直接返回成功，不新增行也不更新时间
func (s *ProgressService) CompleteLesson(ctx context.Context, userID, lessonID uint) (*model.CompletionResult, error) {
	ctx, span := tracing.Tracer.Start(ctx, "ProgressService.CompleteLesson")
	defer span.End()

	if _, err := s.lessonRepo.WithContext(ctx).FindByID(lessonID); err != nil {
		return nil, lookupError("get lesson", err, util.ErrLessonNotFound)
	}

	created, err := s.completionRepo.WithContext(ctx).CreateIfAbsent(userID, lessonID, s.now())
	if err != nil {
		return nil, storageError("record completion", err)
	}

	record, err := s.completionRepo.WithContext(ctx).Find(userID, lessonID)
	if err != nil {
		return nil, storageError("load completion", err)
	}

	monitoring.ObserveCompletion(!created)
	logger.Log.Debug("lesson completion",
		zap.Uint("user_id", userID),
		zap.Uint("lesson_id", lessonID),
		zap.Bool("created", created),
	)

	return &model.CompletionResult{
		LessonID:         lessonID,
		AlreadyCompleted: !created,
		CompletedAt:      record.CompletedAt,
	}, nil
}

// RecordAttempt 每次调用都追加一条记录。默认信任调用方提交的 lessonId/exerciseId，
// 开启 progress.verify_attempt_refs 后校验练习存在且属于该课程。
func (s *ProgressService) RecordAttempt(ctx context.Context, userID uint, req AttemptRequest) (*model.AttemptRecord, error) {
	ctx, span := tracing.Tracer.Start(ctx, "ProgressService.RecordAttempt")
	defer span.End()

	if s.cfg.VerifyAttemptRefs {
		exercise, err := s.exerciseRepo.WithContext(ctx).FindByID(req.ExerciseID)
		if err != nil {
			return nil, lookupError("get exercise", err, util.ErrExerciseNotFound)
		}
		if exercise.LessonID != req.LessonID {
			return nil, util.ErrExerciseLessonMismatch
		}
	}

	record := &model.AttemptRecord{
		UserID:      userID,
		LessonID:    req.LessonID,
		ExerciseID:  req.ExerciseID,
		IsCorrect:   req.IsCorrect,
		CompletedAt: s.now(),
	}
	if err := s.attemptRepo.WithContext(ctx).Create(record); err != nil {
		return nil, storageError("record attempt", err)
	}

	monitoring.ObserveAttempt(req.IsCorrect)
	return record, nil
}

// ListAttempts 返回用户在某节课的全部作答记录，按提交顺序排列
func (s *ProgressService) ListAttempts(ctx context.Context, userID, lessonID uint) ([]model.AttemptRecord, error) {
	ctx, span := tracing.Tracer.Start(ctx, "ProgressService.ListAttempts")
	defer span.End()

	if _, err := s.lessonRepo.WithContext(ctx).FindByID(lessonID); err != nil {
		return nil, lookupError("get lesson", err, util.ErrLessonNotFound)
	}

	records, err := s.attemptRepo.WithContext(ctx).FindByUserLesson(userID, lessonID)
	if err != nil {
		return nil, storageError("list attempts", err)
	}
	return records, nil
}
