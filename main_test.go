// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/cacheprime/internal/version"
)

func runMain(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("CACHEPRIME_CFG", filepath.Join(t.TempDir(), "none.yaml"))

	var out, errb bytes.Buffer
	code := realMain(context.Background(), append([]string{"cacheprime"}, args...), &out, &errb)
	return code, out.String(), errb.String()
}

func TestRealMain_NoArguments(t *testing.T) {
	wd := t.TempDir()
	t.Chdir(wd)

	code, out, errOut := runMain(t)
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Usage: cacheprime")

	entries, err := os.ReadDir(wd)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing may be written without a data dir")
}

func TestRealMain_Version(t *testing.T) {
	code, out, _ := runMain(t, "--version")
	assert.Equal(t, 0, code)
	assert.Equal(t, version.Version+"\n", out)
}

func TestRealMain_Generate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "blocks")

	code, out, _ := runMain(t, "--total-size", "3", "--block-size", "1", dir)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Cache data generation complete!")
	assert.FileExists(t, filepath.Join(dir, "cache_metadata.json"))
}

func TestRealMain_RunFailure(t *testing.T) {
	code, _, errOut := runMain(t, "--total-size", "10", "--block-size", "3", t.TempDir())
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "not a multiple")
}
