// @title LearnHub 后端 API
// @version 1.0
// @description LearnHub 学习平台的测验、进度与证书服务。

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"flag"
	"log"

	"learnhub_backend/internal/app"
	"learnhub_backend/internal/config"
	"learnhub_backend/pkg/database"
	"learnhub_backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件目录")
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.MigrateOnly = *migrateOnly

	// 迁移完成后直接退出
	if cfg.MigrateOnly {
		if _, err := database.InitDB(&cfg.Database, cfg.Server.Mode); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("数据库迁移完成，退出程序")
		return
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	application.WatchConfig(ctx, *configDir)

	logger.Log.Info("Starting LearnHub backend",
		zap.String("mode", cfg.Server.Mode),
		zap.String("database", cfg.Database.Driver),
		zap.String("progress_formula", cfg.Quiz.ProgressFormula),
	)
	application.Run()
}
