// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"

	"github.com/staranto/cacheprime/internal/command"
	"github.com/staranto/cacheprime/internal/config"
	mylog "github.com/staranto/cacheprime/internal/log"
	"github.com/staranto/cacheprime/internal/meta"
	"github.com/staranto/cacheprime/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := realMain(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// realMain returns 1 for usage and setup problems and 2 when a run fails.
func realMain(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// A missing config file is normal; flags fall back to env and defaults.
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Type{}
	}

	mylog.InitLogger()
	log.Debugf("config: %q, args: %v", cfg.Source, args)

	// Short-circuit --version/-v.
	for _, a := range args[1:] {
		if a == "--version" || a == "-v" {
			fmt.Fprintln(stdout, version.Version)
			return 0
		}
	}

	sd, _ := os.Getwd()
	app, err := command.InitApp(ctx, meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
		Stdout:      stdout,
		Stderr:      stderr,
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		if errors.Is(err, command.ErrUsage) {
			return 1
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	return 0
}
