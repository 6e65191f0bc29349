// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{n: 0, want: "0 B (0)"},
		{n: 1, want: "1 B (1)"},
		{n: 1 << 30, want: "1.0 GiB (1073741824)"},
		{n: 100 << 30, want: "100 GiB (107374182400)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Bytes(tt.n))
		})
	}
}

func TestIsTerminal_Buffer(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, "Run summary", []Row{
		{"blocks", "3"},
		{"generated", "2"},
	}, true)

	out := buf.String()
	assert.Contains(t, out, "Run summary")
	assert.Contains(t, out, "blocks")
	assert.Contains(t, out, "generated")
	assert.NotContains(t, out, "\x1b[", "no escape codes when not on a terminal")
}

func TestSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, "nothing", nil, false)
	assert.Empty(t, buf.String())
}

func TestEmit(t *testing.T) {
	v := map[string]any{"ok": true, "checked": 3}

	var js bytes.Buffer
	require.NoError(t, Emit(&js, "json", v))
	assert.JSONEq(t, `{"ok": true, "checked": 3}`, js.String())

	var ym bytes.Buffer
	require.NoError(t, Emit(&ym, "yaml", v))
	assert.YAMLEq(t, "ok: true\nchecked: 3\n", ym.String())

	assert.Error(t, Emit(&bytes.Buffer{}, "text", v))
}
