// 签发开发环境使用的 JWT，方便本地调试接口
//
// 用法: go run scripts/issue_token.go -user 1 -role teacher -name Ada

package main

import (
	"flag"
	"fmt"
	"log"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"
)

func main() {
	configDir := flag.String("config", "configs", "配置文件目录")
	userID := flag.Uint("user", 1, "用户ID")
	role := flag.String("role", string(model.Student), "角色: student | teacher | admin")
	name := flag.String("name", "", "证书上显示的姓名")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	switch model.UserRole(*role) {
	case model.Student, model.Teacher, model.Admin:
	default:
		log.Fatalf("未知角色: %s", *role)
	}

	token, err := util.GenerateJWT(*userID, model.UserRole(*role), *name, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	if err != nil {
		log.Fatalf("签发失败: %v", err)
	}
	fmt.Println(token)
}
