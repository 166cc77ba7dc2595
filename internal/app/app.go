package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/controller"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/service"
	"learnhub_backend/pkg/configwatcher"
	"learnhub_backend/pkg/database"
	"learnhub_backend/pkg/lock"
	"learnhub_backend/pkg/logger"
	"learnhub_backend/pkg/monitoring"
	"learnhub_backend/pkg/security"
	"learnhub_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	course        *repository.CourseRepository
	questionnaire *repository.QuestionnaireRepository
	attempt       *repository.AttemptRepository
	certificate   *repository.CertificateRepository
}

type services struct {
	storage       *service.StorageService
	quiz          *service.QuizService
	course        *service.CourseService
	questionnaire *service.QuestionnaireService
	certificate   *service.CertificateService
}

type controllers struct {
	quiz          *controller.QuizController
	course        *controller.CourseController
	questionnaire *controller.QuestionnaireController
	certificate   *controller.CertificateController
	health        *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 依次执行配置热更新回调
func (a *App) ApplyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		course:        repository.NewCourseRepository(db),
		questionnaire: repository.NewQuestionnaireRepository(db),
		attempt:       repository.NewAttemptRepository(db),
		certificate:   repository.NewCertificateRepository(db),
	}
}

// newLocker 配置了 Redis 时使用分布式锁，多实例部署下同样串行化提交
func newLocker(rdb *redis.Client) lock.Locker {
	if rdb != nil {
		return lock.NewRedisLocker(rdb)
	}
	return lock.NewLocalLocker()
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.quiz = service.NewQuizService(db, repos.questionnaire, repos.course, repos.attempt, newLocker(rdb), cfg.Quiz)
	s.course = service.NewCourseService(repos.course)
	s.questionnaire = service.NewQuestionnaireService(db, repos.questionnaire, repos.course, s.quiz, s.storage, cfg.Quiz.DefaultMinScore)
	s.certificate = service.NewCertificateService(repos.certificate, repos.course, repos.questionnaire, repos.attempt, s.quiz, s.storage)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		quiz:          controller.NewQuizController(s.quiz),
		course:        controller.NewCourseController(s.course),
		questionnaire: controller.NewQuestionnaireController(s.questionnaire, s.quiz),
		certificate:   controller.NewCertificateController(s.certificate),
		health:        controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, window, security.ByClientIP))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// NewApp 连接数据库与 Redis 并完成装配
func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := newApp(cfg, db, rdb)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("learnhub-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	return app
}

// newApp 在已打开的连接上装配各层，rdb 可以为 nil
func newApp(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	app.services = app.initServices(repos, cfg, db, rdb)
	ctrls := app.initControllers(app.services, db, rdb)

	// 监控初始化
	monitoring.Init()

	router := gin.New()
	router.Use(gin.Recovery())
	if gin.Mode() == gin.DebugMode {
		router.Use(gin.Logger())
	}
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, ctrls)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.RegisterConfigCallback(func(c *config.Config) {
		app.services.quiz.SetProgressFormula(c.Quiz.ProgressFormula)
		logger.Log.Info("Progress formula applied", zap.String("formula", c.Quiz.ProgressFormula))
	})
	app.RegisterConfigCallback(func(c *config.Config) {
		logger.SetMode(c.Server.Mode)
	})

	return app
}

// WatchConfig 监听配置目录，变更后执行已注册的回调
func (a *App) WatchConfig(ctx context.Context, configDir string) {
	if err := configwatcher.WatchConfig(ctx, configDir, a.ApplyConfig); err != nil {
		logger.Log.Warn("Config hot reload disabled", zap.Error(err))
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
}
