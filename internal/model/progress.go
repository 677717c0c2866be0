package model

import "time"

type LessonStatus string

const (
	LessonLocked     LessonStatus = "locked"
	LessonAvailable  LessonStatus = "available"
	LessonInProgress LessonStatus = "in_progress"
	LessonCompleted  LessonStatus = "completed"
)

// LessonProgress 单个课程的进度视图。Completed/Started/Available 保持原始语义，
// Status 按 completed > in_progress > available > locked 的优先级得出。
type LessonProgress struct {
	LessonID   uint         `json:"lessonId"`
	OrderIndex int          `json:"orderIndex"`
	Status     LessonStatus `json:"status"`
	Completed  bool         `json:"completed"`
	Started    bool         `json:"started"`
	Available  bool         `json:"available"`
}

type LanguageProgress struct {
	LanguageID       uint             `json:"languageId"`
	TotalLessons     int              `json:"totalLessons"`
	CompletedLessons int              `json:"completedLessons"`
	Lessons          []LessonProgress `json:"lessons"`
}

// CompletionResult CompleteLesson 的结果，AlreadyCompleted 为 true 时未写入新行，
// CompletedAt 始终是首次完成的时间
type CompletionResult struct {
	LessonID         uint      `json:"lessonId"`
	AlreadyCompleted bool      `json:"alreadyCompleted"`
	CompletedAt      time.Time `json:"completedAt"`
}
