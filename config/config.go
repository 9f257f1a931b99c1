package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	Port             int
	MongoURI         string
	MongoDB          string
	JWTKey           string
	AdminPassword    string
	Debug            bool
	CORSOrigins      []string
	LogRetentionDays int
}

// LoadConfig 从环境变量加载配置（存在 .env 时先加载）
func LoadConfig() *Config {
	// .env 不存在时忽略
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		port = 8080
	}
	retention, err := strconv.Atoi(getEnv("LOG_RETENTION_DAYS", "90"))
	if err != nil {
		retention = 0
	}

	return &Config{
		Port:             port,
		MongoURI:         getEnv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:          getEnv("MONGO_DB", "mentorship"),
		JWTKey:           getEnv("JWT_KEY", "your-secret-key"), // 实际环境应替换为安全密钥
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
		Debug:            getEnv("GIN_MODE", "debug") == "debug",
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		LogRetentionDays: retention,
	}
}

// getEnv 获取环境变量，如果不存在则返回默认值
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// splitList 拆分逗号分隔的配置项
func splitList(value string) []string {
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
