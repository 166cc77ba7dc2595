package util

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound               = errors.New("not found")
	ErrEmptyQuestionnaire     = errors.New("questionnaire has no questions")
	ErrAttemptLimitExceeded   = errors.New("Maximum quiz attempts reached")
	ErrCourseMismatch         = errors.New("chapter does not belong to the course")
	ErrInvalidInput           = errors.New("invalid input")
	ErrCertificateNotEligible = errors.New("course requirements not met for certificate")
)

// AttemptLimitError 携带当前已用次数，便于前端渲染剩余次数
type AttemptLimitError struct {
	Count int
}

func (e *AttemptLimitError) Error() string {
	return fmt.Sprintf("%s (%d attempts used)", ErrAttemptLimitExceeded.Error(), e.Count)
}

func (e *AttemptLimitError) Unwrap() error {
	return ErrAttemptLimitExceeded
}

// NotFoundError 返回带资源类型和ID描述的 ErrNotFound
func NotFoundError(kind, id string) error {
	return fmt.Errorf("%s %q %w", kind, id, ErrNotFound)
}

// InvalidInput 返回带说明的 ErrInvalidInput
func InvalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
