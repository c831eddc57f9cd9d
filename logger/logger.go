package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Log   *zap.Logger
	Sugar *zap.SugaredLogger
)

// Init initializes the global logger configuration.
func Init() {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	encoder := zapcore.NewJSONEncoder(encoderConfig)
	writer := zapcore.AddSync(os.Stdout)

	core := zapcore.NewCore(encoder, writer, zapcore.InfoLevel)

	Log = zap.New(core, zap.AddCaller())
	Sugar = Log.Sugar()
}

func init() {
	// Tests and library consumers get a usable logger without calling Init.
	Log = zap.NewNop()
	Sugar = Log.Sugar()
}
