package main

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(levelStr, format string) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	switch levelStr {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, _ := cfg.Build()
	return logger.Sugar()
}

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat)
	defer logger.Sync()

	store, err := NewDataStore(cfg.DataDir, cfg.UpcomingLimit, logger)
	if err != nil {
		logger.Fatalw("failed to initialize data store", "dir", cfg.DataDir, "error", err)
	}
	defer store.Close()

	if cfg.Watch {
		go store.WatchFiles()
	}

	engine := NewEngine(store, logger)
	server := NewServer(engine, store, logger)

	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	server.RegisterRoutes(e)

	logger.Infow("chatbot backend started",
		"port", cfg.Port,
		"data_dir", cfg.DataDir,
		"auto_reload", cfg.Watch,
		"upcoming_limit", cfg.UpcomingLimit,
	)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Port)))
}
