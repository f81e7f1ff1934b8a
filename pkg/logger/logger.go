package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего бота.
var Log *logrus.Logger

// baseLevel - уровень из окружения, к нему возвращаемся при выключении debug
var baseLevel = logrus.InfoLevel

// Init инициализирует глобальный логгер.
// Вызывается один раз при старте хоста (или в TestMain).
func Init() {
	Log = logrus.New()

	// 1. Уровень логирования из переменной окружения, по умолчанию "info".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	baseLevel = level
	Log.SetLevel(level)

	// 2. Форматтер: "json" - для сбора логов, "text" - для чтения глазами.
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(os.Stdout)
}

// SetDebug включает/выключает отладочный вывод (флаг debug из конфига бота).
func SetDebug(on bool) {
	if Log == nil {
		Init()
	}
	if on {
		Log.SetLevel(logrus.DebugLevel)
		return
	}
	Log.SetLevel(baseLevel)
}

// SetOutput перенаправляет вывод (тесты глушат логгер через io.Discard).
func SetOutput(w io.Writer) {
	if Log == nil {
		Init()
	}
	Log.SetOutput(w)
}
