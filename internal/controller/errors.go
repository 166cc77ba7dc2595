package controller

import (
	"errors"
	"net/http"

	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/lock"

	"github.com/gin-gonic/gin"
)

// respondError 把领域错误映射为统一响应
func respondError(ctx *gin.Context, err error) {
	var limitErr *util.AttemptLimitError
	switch {
	case errors.As(err, &limitErr):
		msg := util.ErrAttemptLimitExceeded.Error()
		util.ErrorWithData(ctx, http.StatusBadRequest, msg, gin.H{
			"error":        msg,
			"attemptCount": limitErr.Count,
		})
	case errors.Is(err, util.ErrNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrEmptyQuestionnaire),
		errors.Is(err, util.ErrCourseMismatch),
		errors.Is(err, util.ErrInvalidInput),
		errors.Is(err, util.ErrCertificateNotEligible):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, lock.ErrLockTimeout):
		util.Error(ctx, http.StatusConflict, "another submission is in progress, please retry")
	default:
		util.LogInternalError(ctx, err)
	}
}

// currentUser 取出认证中间件写入的用户，不存在时已写出 401
func currentUser(ctx *gin.Context) *util.Claims {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
	}
	return user
}
