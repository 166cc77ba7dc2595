package controller

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	Service *service.CertificateService
}

func NewCertificateController(svc *service.CertificateService) *CertificateController {
	return &CertificateController{Service: svc}
}

type CertificateTemplateRequest struct {
	Title        string              `json:"title"`
	Placeholders []model.Placeholder `json:"placeholders"`
}

// @Summary 保存课程证书模板
// @Tags 证书
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "课程ID"
// @Param body body CertificateTemplateRequest true "模板标题与占位符坐标（百分比）"
// @Success 200 {object} util.Response{data=model.CertificateTemplate}
// @Router /api/teacher/courses/{id}/certificate-template [put]
func (c *CertificateController) UpsertTemplate(ctx *gin.Context) {
	var req CertificateTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	tpl, err := c.Service.UpsertTemplate(ctx.Request.Context(), ctx.Param("id"), req.Title, req.Placeholders)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, tpl)
}

// @Summary 申请结业证书
// @Description 所有必修问卷的最近得分达到及格线后签发，重复申请返回已签发的证书
// @Tags 证书
// @Produce json
// @Security BearerAuth
// @Param id path string true "课程ID"
// @Success 201 {object} util.Response{data=model.Certificate}
// @Router /api/courses/{id}/certificate [post]
func (c *CertificateController) Issue(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}

	cert, err := c.Service.Issue(ctx.Request.Context(), user.UserID, ctx.Param("id"), user.Name)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, cert)
}

// @Summary 我的证书
// @Tags 证书
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Certificate}
// @Router /api/certificates [get]
func (c *CertificateController) ListMine(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		return
	}

	certs, err := c.Service.ListForUser(ctx.Request.Context(), user.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"items": certs, "total": len(certs)})
}
