package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

// New builds a JSON production logger for env "production" and a console
// development logger otherwise. When cloudWatch is non-nil every entry is
// also written to it as a JSON line.
func New(env string, cloudWatch io.Writer) (*zap.Logger, error) {
	var config zap.Config
	if env == "production" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	log, err := config.Build()
	if err != nil || cloudWatch == nil {
		return log, err
	}

	cwEncoding := zap.NewProductionEncoderConfig()
	cwEncoding.TimeKey = "timestamp"
	cwEncoding.EncodeTime = zapcore.ISO8601TimeEncoder
	cwCore := zapcore.NewCore(zapcore.NewJSONEncoder(cwEncoding), zapcore.AddSync(cloudWatch), config.Level)

	return log.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, cwCore)
	})), nil
}

// GormLevel returns the SQL log level for env.
func GormLevel(env string) gormlogger.LogLevel {
	if env == "production" {
		return gormlogger.Warn
	}
	return gormlogger.Info
}
