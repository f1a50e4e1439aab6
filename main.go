package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"IdeaEnv/cmd"
	"IdeaEnv/internal/config"
	"IdeaEnv/internal/console"
	"IdeaEnv/internal/logger"
	"IdeaEnv/internal/version"
)

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	slog.SetDefault(logger.NewLogger(logger.Options{}))
	ctx := context.Background()

	// Defer cleanup to ensure it runs even if we return early or panic
	defer cleanup(ctx)

	// Recover from logger.FatalError to ensure cleanup runs
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(logger.FatalError); ok {
				exitCode = 1
			} else {
				panic(r)
			}
		}
		if exitCode != 0 {
			fmt.Fprintln(os.Stderr, console.Parse(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} did not finish running successfully.", version.ApplicationName)))
		}
	}()
	defer logger.Recover(ctx)

	opts, err := cmd.Parse(os.Args[1:])
	var usageErr *cmd.UsageError
	if errors.As(err, &usageErr) {
		logger.Warn(ctx, usageErr.Error())
		return 0
	}
	if err != nil {
		logger.Error(ctx, err.Error())
		return 1
	}

	conf, err := config.LoadAppConfig()
	if err != nil {
		logger.Warn(ctx, "%v", err)
		logger.Warn(ctx, "Using the default configuration.")
	}

	level := logger.ParseLevel(conf.Log.Level)
	switch {
	case opts.Debug:
		level = logger.LevelDebug
	case opts.Verbose:
		level = logger.LevelInfo
	}
	logger.SetLevel(level)
	if conf.Log.File != "" {
		slog.SetDefault(logger.NewLogger(logger.Options{File: conf.Log.File}))
	}

	return cmd.Execute(ctx, opts, conf)
}

func cleanup(ctx context.Context) {
	logger.Trace(ctx, "Cleaning up...")
	logger.Cleanup()
}
