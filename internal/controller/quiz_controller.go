package controller

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Service: svc}
}

type SubmitQuizRequest struct {
	QuestionnaireID string            `json:"questionnaireId" binding:"required"`
	Answers         map[string]string `json:"answers"`
}

type QuizFeedback struct {
	Questions []model.AnswerDetail `json:"questions"`
}

type SubmitQuizResponse struct {
	Success        bool         `json:"success"`
	AttemptID      string       `json:"attemptId"`
	Score          int          `json:"score"`
	AttemptCount   int          `json:"attemptCount"`
	CorrectAnswers int          `json:"correctAnswers"`
	TotalQuestions int          `json:"totalQuestions"`
	Feedback       QuizFeedback `json:"feedback"`
}

// @Summary 提交问卷答案
// @Description 判分并记录一次答题，每个问卷最多作答3次
// @Tags 测验
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SubmitQuizRequest true "答案，题目ID -> 答案"
// @Success 200 {object} util.Response{data=SubmitQuizResponse}
// @Failure 400 {object} util.Response "次数用尽时 data 中包含 attemptCount"
// @Failure 404 {object} util.Response
// @Router /api/submit-quiz [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}

	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	res, err := c.Service.SubmitAttempt(ctx.Request.Context(), user.UserID, req.QuestionnaireID, req.Answers)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, SubmitQuizResponse{
		Success:        true,
		AttemptID:      res.AttemptID,
		Score:          res.Score,
		AttemptCount:   res.AttemptCount,
		CorrectAnswers: res.CorrectCount,
		TotalQuestions: res.TotalQuestions,
		Feedback:       QuizFeedback{Questions: res.Detail},
	})
}

// @Summary 课程学习进度
// @Tags 测验
// @Produce json
// @Security BearerAuth
// @Param courseId query string true "课程ID"
// @Success 200 {object} util.Response{data=service.CourseProgress}
// @Router /api/course-progress [get]
func (c *QuizController) CourseProgress(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}

	courseID := ctx.Query("courseId")
	if courseID == "" {
		util.BadRequest(ctx, "courseId is required")
		return
	}

	progress, err := c.Service.ComputeCourseProgress(ctx.Request.Context(), user.UserID, courseID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// @Summary 获取问卷（不含答案）
// @Tags 测验
// @Produce json
// @Security BearerAuth
// @Param id path string true "问卷ID"
// @Success 200 {object} util.Response{data=service.LearnerQuestionnaire}
// @Router /api/questionnaires/{id} [get]
func (c *QuizController) GetQuestionnaire(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}

	q, err := c.Service.GetQuestionnaireForLearner(ctx.Request.Context(), user.UserID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// @Summary 我的答题记录
// @Tags 测验
// @Produce json
// @Security BearerAuth
// @Param id path string true "问卷ID"
// @Success 200 {object} util.Response{data=[]model.QuizAttempt}
// @Router /api/questionnaires/{id}/attempts [get]
func (c *QuizController) ListAttempts(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}

	attempts, err := c.Service.ListAttempts(ctx.Request.Context(), user.UserID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"items": attempts, "total": len(attempts)})
}
