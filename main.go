package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tamaiicon/internal/icon"
)

const AppName = "tamaiicon"

func main() {
	logger := newLogger()
	code := run(logger, icon.OutputFile)
	_ = logger.Sync()
	os.Exit(code)
}

// run renders the icon into path and returns the process exit code.
func run(logger *zap.Logger, path string) int {
	img, err := icon.Render(icon.Default())
	if err != nil {
		logger.Error("render failed", zap.Error(err))
		return 1
	}
	if err := icon.WriteFile(path, img); err != nil {
		logger.Error("write failed", zap.String("path", path), zap.Error(err))
		return 1
	}
	logger.Debug("icon written",
		zap.String("path", path),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
	)
	return 0
}

// newLogger writes human-readable entries to stderr at Info and above.
func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	logger, err := cfg.Build(zap.Fields(zap.String("app", AppName)))
	if err != nil {
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(cfg.EncoderConfig),
			zapcore.Lock(os.Stderr),
			zapcore.InfoLevel,
		)
		return zap.New(core)
	}
	return logger
}
