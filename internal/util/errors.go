package util

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailRegistered        = errors.New("this email is already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrLanguageNotFound       = errors.New("language not found")
	ErrLessonNotFound         = errors.New("lesson not found")
	ErrExerciseNotFound       = errors.New("exercise not found")
	ErrExerciseLessonMismatch = errors.New("exercise does not belong to lesson")
	ErrStorageUnavailable     = errors.New("storage unavailable")
)

// IsNotFound 判断是否为任意一种资源不存在错误
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrLanguageNotFound) ||
		errors.Is(err, ErrLessonNotFound) ||
		errors.Is(err, ErrExerciseNotFound)
}
