package app

import (
	"learnhub_backend/docs"
	"learnhub_backend/internal/middleware"
	"learnhub_backend/internal/model"
	"learnhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(a.Config.JWT.Secret))
	{
		// 学生/通用 授权接口
		a.registerStudentRoutes(authGroup, c)

		// 教师相关接口
		a.registerTeacherRoutes(authGroup, c)
	}
}

func (a *App) registerStudentRoutes(group *gin.RouterGroup, c *controllers) {
	group.POST("/submit-quiz", c.quiz.SubmitQuiz)
	group.GET("/course-progress", c.quiz.CourseProgress)
	group.GET("/questionnaires/:id", c.quiz.GetQuestionnaire)
	group.GET("/questionnaires/:id/attempts", c.quiz.ListAttempts)

	group.GET("/courses/:id", c.course.GetCourse)
	group.POST("/courses/:id/certificate", c.certificate.Issue)
	group.GET("/certificates", c.certificate.ListMine)
}

func (a *App) registerTeacherRoutes(group *gin.RouterGroup, c *controllers) {
	teacher := group.Group("/teacher")
	teacher.Use(middleware.RoleMiddleware(model.Teacher))
	{
		teacher.POST("/courses", c.course.CreateCourse)
		teacher.POST("/courses/:id/chapters", c.course.CreateChapter)
		teacher.PUT("/courses/:id/certificate-template", c.certificate.UpsertTemplate)

		teacher.POST("/questionnaires", c.questionnaire.CreateQuestionnaire)
		teacher.POST("/courses/:id/questionnaires/import", c.questionnaire.ImportQuestionnaire)
		teacher.POST("/assign-questionnaire", c.questionnaire.AssignQuestionnaire)
	}
}
