// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/staranto/cacheprime/internal/config"
)

// InitLogger sets up Apex with a custom handler. The level comes from the
// CACHEPRIME_LOG env variable, then the config file's log key, then ERROR.
func InitLogger() {
	level := strings.ToUpper(os.Getenv("CACHEPRIME_LOG"))
	if level == "" {
		level, _ = config.GetString("log", "ERROR")
		level = strings.ToUpper(level)
	}
	log.SetHandler(&CustomHandler{W: os.Stderr})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.ErrorLevel
	}
	log.SetLevel(lvl)
}

// CustomHandler formats log messages on a single line. Stdout carries
// progress, so logs default to stderr.
type CustomHandler struct {
	W io.Writer
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	w := h.W
	if w == nil {
		w = os.Stderr
	}
	timestamp := e.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	level := strings.ToUpper(e.Level.String())
	fmt.Fprintf(w, "%s %.1s %s", timestamp.Format("2006-01-02 15:04:05"), level, e.Message)
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(w, " %s=%v", name, e.Fields.Get(name))
	}
	fmt.Fprintln(w)
	return nil
}
