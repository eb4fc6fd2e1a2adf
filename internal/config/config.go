package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr     string
	Port           string
	DatabasePath   string
	SessionSecret  string
	GinMode        string
	SiteName       string
	MailFrom       string
	SMTPHost       string
	SMTPPort       string
	SMTPUser       string
	SMTPPassword   string
	LogMode        string
	LogLevel       string
	LogDir         string
	AuthorUserName string
	AuthorPassword string
}

// Load 从 .env 与环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	_ = godotenv.Load(".env")

	port := env("PORT", "8080")

	return AppConfig{
		ListenAddr:     env("LISTEN_ADDR", fmt.Sprintf(":%s", port)),
		Port:           port,
		DatabasePath:   env("DATABASE_PATH", "postline.db"),
		SessionSecret:  env("SESSION_SECRET", "postline-dev-secret"),
		GinMode:        env("GIN_MODE", "release"),
		SiteName:       env("SITE_NAME", "Postline"),
		MailFrom:       env("MAIL_FROM", "noreply@postline.local"),
		SMTPHost:       env("SMTP_HOST", ""),
		SMTPPort:       env("SMTP_PORT", "587"),
		SMTPUser:       env("SMTP_USER", ""),
		SMTPPassword:   env("SMTP_PASSWORD", ""),
		LogMode:        strings.ToLower(env("LOG_MODE", "prod")),
		LogLevel:       strings.ToLower(env("LOG_LEVEL", "info")),
		LogDir:         env("LOG_DIR", "logs"),
		AuthorUserName: env("AUTHOR_USER_NAME", ""),
		AuthorPassword: env("AUTHOR_PASSWORD", ""),
	}
}

// SMTPEnabled reports whether outbound mail should go through SMTP.
func (c AppConfig) SMTPEnabled() bool {
	return c.SMTPHost != ""
}

// Validate 返回不影响启动的配置警告。
func (c AppConfig) Validate() []string {
	var warnings []string
	if !c.SMTPEnabled() {
		warnings = append(warnings, "SMTP_HOST is empty, shared posts are written to the log instead of sent")
	}
	if c.SessionSecret == "postline-dev-secret" {
		warnings = append(warnings, "SESSION_SECRET is using the development default")
	}
	if c.AuthorUserName == "" || c.AuthorPassword == "" {
		warnings = append(warnings, "AUTHOR_USER_NAME/AUTHOR_PASSWORD not set, no author account ensured")
	}
	return warnings
}

func env(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
