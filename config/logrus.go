package config

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var logrusInstance *logrus.Logger

func GetLogrusInstance() *logrus.Logger {
	if logrusInstance == nil {
		logrusInstance = logrus.New()
		logrusInstance.SetFormatter(&logrus.JSONFormatter{})
		logrusInstance.SetOutput(os.Stdout)

		level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
		if err != nil {
			level = logrus.InfoLevel
		}
		logrusInstance.SetLevel(level)
	}
	return logrusInstance
}

const (
	green  = "\033[32m" // 2xx
	yellow = "\033[33m" // 202 and 3xx
	red    = "\033[31m" // 4xx and 5xx
	reset  = "\033[0m"
)

// PrintLogInfo writes one access line per handled request.
func PrintLogInfo(username *string, statusCode int, functionName string) {
	var logColor string

	switch {
	case statusCode == fiber.StatusAccepted, statusCode >= 300 && statusCode < 400:
		logColor = yellow
	case statusCode >= 200 && statusCode < 300:
		logColor = green
	case statusCode >= 400:
		logColor = red
	default:
		logColor = reset
	}

	user := "Unknown"
	if username != nil && *username != "" {
		user = *username
	}

	logMsg := fmt.Sprintf("User: %s, (%s) => Status: %s[%d] - %s%s", user, functionName, logColor, statusCode, http.StatusText(statusCode), reset)

	entry := GetLogrusInstance().WithFields(logrus.Fields{
		"user":    user,
		"handler": functionName,
		"status":  statusCode,
	})
	if statusCode >= 500 {
		entry.Error(logMsg)
		return
	}
	entry.Info(logMsg)
}
