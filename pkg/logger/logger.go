package logger

import (
	"fmt"
	"os"

	"github.com/mattedesign/figmant-759992b3-sub008/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timeLayout = "15:04:05 02-01-2006"

var logLvlMap = map[string]zapcore.Level{
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
	"debug": zapcore.DebugLevel,
}

// InitLogger builds the process-wide zap logger. Console output is always on;
// when LOG_FILE is set a rotated JSON file sink is teed in.
func InitLogger(conf *config.Config) error {
	lvl, ok := logLvlMap[conf.LogLvl]
	if !ok {
		return fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}

	encodeConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
	}

	atomicLvl := zap.NewAtomicLevelAt(lvl)
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encodeConfig), zapcore.Lock(os.Stdout), atomicLvl),
	}

	if conf.LogFile != "" {
		fileEncoder := zap.NewProductionEncoderConfig()
		fileEncoder.TimeKey = "timestamp"
		fileEncoder.EncodeTime = zapcore.ISO8601TimeEncoder

		rotator := &lumberjack.Logger{
			Filename:   conf.LogFile,
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoder), zapcore.AddSync(rotator), atomicLvl))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.ErrorOutput(zapcore.Lock(os.Stderr)))

	zap.ReplaceGlobals(logger)

	return nil
}
