package common

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logsDirName  = "logs"
	logsFileName = "altitude.log"
)

var (
	// the tracker goroutine logs while tests swap the logger, hence atomic
	logger atomic.Pointer[zap.Logger]
	once   sync.Once
)

func getLogger() *zap.Logger {
	once.Do(initLogger)
	return logger.Load()
}

func GetLogger() *zap.Logger {
	return getLogger().Named("default")
}

func GetLoggerWith(name string, fields ...zap.Field) *zap.Logger {
	return getLogger().Named(name).With(fields...)
}

// GetCategoryLogger returns the named logger with the category field set.
func GetCategoryLogger(name string, category string) *zap.Logger {
	return GetLoggerWith(name, zap.String(LoggerFieldCategory, category))
}

// SyncLogger flushes buffered entries, call before exit.
func SyncLogger() {
	if l := logger.Load(); l != nil {
		_ = l.Sync()
	}
}

func jsonEncoder() zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(encoderCfg)
}

// fileLevel reads TREK_LOG_LEVEL, info when unset or unparsable.
func fileLevel() zapcore.Level {
	level, err := zapcore.ParseLevel(GetEnvOr(EnvKeyTrekLogLevel, "info"))
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func initLogger() {
	dir, err := os.Getwd()
	if err != nil {
		log.Fatalf("Error getting current directory: %v", err)
	}

	logsDir := filepath.Join(dir, logsDirName)
	if err := os.MkdirAll(logsDir, os.ModePerm); err != nil {
		log.Fatalf("Error find/create logs directory: %v", err)
	}

	logFile := &lumberjack.Logger{
		Filename:   filepath.Join(logsDir, logsFileName),
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     28,   // days
		Compress:   true, // gzip
	}

	core := zapcore.NewCore(jsonEncoder(), zapcore.AddSync(logFile), fileLevel())
	if !IsProduction() {
		consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		consoleCore := zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), zap.DebugLevel)
		core = zapcore.NewTee(core, consoleCore)
	}

	logger.Store(zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)))
}

// SetTestCaptureLogger writes JSON lines at level and above into buf. No log
// file is created.
func SetTestCaptureLogger(buf *bytes.Buffer, level zapcore.Level) {
	once.Do(func() {})
	core := zapcore.NewCore(jsonEncoder(), zapcore.AddSync(buf), level)
	logger.Store(zap.New(core))
}

func SetTestLoggerNop() {
	once.Do(func() {})
	logger.Store(zap.NewNop())
}
