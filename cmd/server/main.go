package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/postline/internal/config"
	"github.com/postline/internal/db"
	"github.com/postline/internal/logger"
	"github.com/postline/internal/router"
	"github.com/postline/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.LogMode, cfg.LogLevel, cfg.LogDir); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Log.Sync() }()

	for _, warning := range cfg.Validate() {
		logger.Log.Warn(warning)
	}

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		logger.Log.Fatal("failed to initialize database", zap.Error(err))
	}

	if user, err := db.EnsureUser(db.DB, cfg.AuthorUserName, cfg.AuthorPassword); err != nil {
		logger.Log.Fatal("failed to ensure author account", zap.Error(err))
	} else if user != nil {
		logger.Log.Info("author account ready", zap.String("username", user.Username))
	}

	var mailer service.Mailer
	if cfg.SMTPEnabled() {
		mailer = service.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	} else {
		mailer = service.NewLogMailer(logger.Log)
	}

	gin.SetMode(cfg.GinMode)

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(router.Options{
		SessionSecret: cfg.SessionSecret,
		SiteName:      cfg.SiteName,
		MailFrom:      cfg.MailFrom,
		Mailer:        mailer,
		Logger:        logger.Log,
	})

	logger.Log.Info("server started", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Log.Fatal("failed to run server", zap.Error(err))
	}
}
