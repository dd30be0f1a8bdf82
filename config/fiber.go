package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

func GetFiberListenAddress() string {
	return fmt.Sprintf("%s:%s", GetFiberHttpHost(), GetFiberHttpPort())
}

func GetFiberConfig() fiber.Config {
	return fiber.Config{
		DisableStartupMessage: false,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		Prefork:               false,
		ServerHeader:          GetAppName(),
		AppName:               GetAppName(),
		ReadTimeout:           time.Second * 60,
		BodyLimit:             GetBodyLimit(),
		CaseSensitive:         true,
	}
}

func GetAppName() string {
	return getEnv("APP_NAME", "SPONSORSHIP")
}

func GetFiberHttpHost() string {
	return getEnv("HTTP_HOST", "0.0.0.0")
}

func GetFiberHttpPort() string {
	return getEnv("HTTP_PORT", "8000")
}

// GetBodyLimit bounds request bodies, spreadsheets and pictures included. Default 10 MiB.
func GetBodyLimit() int {
	return getEnvInt("BODY_LIMIT_MB", 10) * 1024 * 1024
}

// GetContextTimeout is the deadline each use case puts on its storage calls.
func GetContextTimeout() time.Duration {
	return time.Duration(getEnvInt("CONTEXT_TIMEOUT", 10)) * time.Second
}

func GetUploadDir() string {
	return getEnv("UPLOAD_DIR", "./uploads")
}

func GetJWTKey() []byte {
	return []byte(os.Getenv("BYTE_KEY"))
}

// GetRateLimitMax is the number of requests one client may make per minute.
func GetRateLimitMax() int {
	return getEnvInt("RATE_LIMIT_MAX", 120)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
