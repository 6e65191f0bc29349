// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"bytes"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestHandleLog(t *testing.T) {
	var buf bytes.Buffer
	h := &CustomHandler{W: &buf}

	e := &log.Entry{
		Level:     log.WarnLevel,
		Message:   "block appeared during run",
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Fields:    log.Fields{"index": 3, "dir": "/tmp/x"},
	}
	assert.NoError(t, h.HandleLog(e))
	assert.Equal(t, "2025-06-01 12:00:00 W block appeared during run dir=/tmp/x index=3\n", buf.String())
}

func TestInitLogger_Env(t *testing.T) {
	t.Setenv("CACHEPRIME_LOG", "debug")
	InitLogger()
	assert.Equal(t, log.DebugLevel, log.Log.(*log.Logger).Level)

	t.Setenv("CACHEPRIME_LOG", "nonsense")
	InitLogger()
	assert.Equal(t, log.ErrorLevel, log.Log.(*log.Logger).Level)
}
