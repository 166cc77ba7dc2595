package repository

import (
	"errors"

	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

// notFound 把 gorm 的记录不存在转换为领域错误
func notFound(err error, kind, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.NotFoundError(kind, id)
	}
	return err
}

// IsDuplicateKey 唯一索引冲突（需要 gorm.Config.TranslateError）
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
