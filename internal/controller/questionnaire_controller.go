package controller

import (
	"io"

	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionnaireController struct {
	Service *service.QuestionnaireService
	Quiz    *service.QuizService
}

func NewQuestionnaireController(svc *service.QuestionnaireService, quiz *service.QuizService) *QuestionnaireController {
	return &QuestionnaireController{Service: svc, Quiz: quiz}
}

type AssignQuestionnaireRequest struct {
	QuestionnaireID string  `json:"questionnaireId" binding:"required"`
	CourseID        string  `json:"courseId" binding:"required"`
	ChapterID       *string `json:"chapterId"`
}

// @Summary 创建问卷
// @Tags 问卷管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CreateQuestionnaireRequest true "问卷与题目"
// @Success 201 {object} util.Response{data=model.Questionnaire}
// @Router /api/teacher/questionnaires [post]
func (c *QuestionnaireController) CreateQuestionnaire(ctx *gin.Context) {
	var req service.CreateQuestionnaireRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.CreateQuestionnaire(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, q)
}

// @Summary 从 YAML 文件导入问卷
// @Tags 问卷管理
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "课程ID"
// @Param file formData file true "问卷 YAML 文件"
// @Success 201 {object} util.Response{data=model.Questionnaire}
// @Router /api/teacher/courses/{id}/questionnaires/import [post]
func (c *QuestionnaireController) ImportQuestionnaire(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	if !util.HasAllowedExtension(fileHeader.Filename, util.AllowedBundleExtensions) {
		util.BadRequest(ctx, "only .yaml or .yml files are accepted")
		return
	}
	if fileHeader.Size > util.MaxBundleSize {
		util.BadRequest(ctx, "file too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	if _, err := util.ValidateMimeType(file, []string{util.MimeText}); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	q, err := c.Service.ImportYAML(ctx.Request.Context(), ctx.Param("id"), file)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, q)
}

// @Summary 将问卷挂到课程/章节
// @Description 重复调用不会产生重复的课程关联；章节只能挂一个问卷，新问卷覆盖旧问卷
// @Tags 问卷管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AssignQuestionnaireRequest true "问卷、课程与可选章节"
// @Success 200 {object} util.Response{data=model.Questionnaire}
// @Failure 400 {object} util.Response "章节不属于该课程"
// @Failure 404 {object} util.Response
// @Router /api/teacher/assign-questionnaire [post]
func (c *QuestionnaireController) AssignQuestionnaire(ctx *gin.Context) {
	var req AssignQuestionnaireRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Quiz.AssignQuestionnaire(ctx.Request.Context(), req.QuestionnaireID, req.CourseID, req.ChapterID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, q)
}
