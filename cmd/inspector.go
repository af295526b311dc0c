package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"sysinspector/internal/conf"
	"sysinspector/internal/inspect"
	"sysinspector/internal/progress"
	"sysinspector/internal/render"
	"sysinspector/internal/system"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := conf.LoadConfig("config.toml"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger, err := initializeLogger(conf.GetLog())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() {
		_ = logger.Sync() // Flush any buffered log entries
	}()

	ctx, stop := interruptContext(context.Background())
	defer stop()

	inspector := &inspect.Inspector{
		Console:   render.NewConsole(os.Stdout),
		Collector: system.NewProbe(logger, conf.GetProbe()),
		Progress:  progress.Run,
		Log:       logger,
	}
	if err := inspector.Run(ctx); err != nil {
		logger.Error("inspection failed", zap.Error(err), zap.Stack("stack"))
		return 1
	}
	return 0
}

// interruptContext is cancelled by the first SIGINT or SIGTERM. Later
// signals get the default handling, so a collector stuck on a hung mount
// can still be killed.
func interruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	context.AfterFunc(ctx, stop)
	return ctx, stop
}

func initializeLogger(cfg conf.Log) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = level
	loggerConfig.Encoding = "console"
	loggerConfig.OutputPaths = []string{cfg.Path}
	loggerConfig.ErrorOutputPaths = []string{"stderr"}
	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
