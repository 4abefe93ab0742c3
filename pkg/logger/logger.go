package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init configures the global zap logger. mode is "production" or
// "development"; when filename is non-empty the log is also written to a
// rotating file.
func Init(mode, filename string) *zap.Logger {
	var encoderCfg zapcore.EncoderConfig
	var level zapcore.Level
	if mode == "production" {
		encoderCfg = zap.NewProductionEncoderConfig()
		level = zapcore.InfoLevel
	} else {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
		level = zapcore.DebugLevel
	}
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderCfg),
			zapcore.Lock(os.Stdout),
			level,
		),
	}

	if filename != "" {
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   filename,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			fileWriter,
			level,
		))
	}

	log := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	zap.ReplaceGlobals(log)
	return log
}
