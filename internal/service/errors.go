package service

import (
	"errors"
	"fmt"
	"language_tutor_backend/internal/util"

	"gorm.io/gorm"
)

// storageError 将非预期的存储错误包装为 ErrStorageUnavailable，保留原始错误链
func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, util.ErrStorageUnavailable, err)
}

// lookupError 记录不存在时返回 notFound，其余错误视为存储不可用
func lookupError(op string, err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return storageError(op, err)
}
