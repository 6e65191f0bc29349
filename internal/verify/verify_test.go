// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package verify

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/cacheprime/internal/digest"
	"github.com/staranto/cacheprime/internal/generator"
)

func generate(t *testing.T, encoding string) string {
	t.Helper()
	dir := t.TempDir()
	req := generator.NewRequest(dir)
	req.TotalSize = 6 * 512
	req.BlockSize = 512
	req.Encoding = encoding
	_, err := (&generator.Generator{}).Generate(context.Background(), req)
	require.NoError(t, err)
	return dir
}

func TestDir_Clean(t *testing.T) {
	for _, enc := range digest.Encodings() {
		t.Run(enc, func(t *testing.T) {
			dir := generate(t, enc)
			rep, err := Dir(context.Background(), dir, Options{Jobs: 2})
			require.NoError(t, err)
			assert.True(t, rep.OK(), "problems: %v", rep.Problems)
			assert.Equal(t, int64(6), rep.Checked)
		})
	}
}

func TestDir_Problems(t *testing.T) {
	dir := generate(t, digest.Raw)

	require.NoError(t, os.Remove(generator.BlockPath(dir, 1)))
	require.NoError(t, os.Truncate(generator.BlockPath(dir, 3), 100))

	b, err := os.ReadFile(generator.BlockPath(dir, 4))
	require.NoError(t, err)
	b[300] ^= 0xff
	require.NoError(t, os.WriteFile(generator.BlockPath(dir, 4), b, 0o644))

	rep, err := Dir(context.Background(), dir, Options{})
	require.NoError(t, err)
	require.Len(t, rep.Problems, 3)

	assert.Equal(t, Missing, rep.Problems[0].Kind)
	assert.Equal(t, int64(1), rep.Problems[0].Index)
	assert.Equal(t, Size, rep.Problems[1].Kind)
	assert.Equal(t, "cache_block_3.dat", rep.Problems[1].Name)
	assert.Equal(t, Content, rep.Problems[2].Kind)
	assert.Equal(t, int64(4), rep.Problems[2].Index)
	assert.False(t, rep.OK())
}

func TestDir_SwappedBlocks(t *testing.T) {
	dir := generate(t, digest.Hex)

	a, b := generator.BlockPath(dir, 0), generator.BlockPath(dir, 5)
	tmp := a + ".tmp"
	require.NoError(t, os.Rename(a, tmp))
	require.NoError(t, os.Rename(b, a))
	require.NoError(t, os.Rename(tmp, b))

	rep, err := Dir(context.Background(), dir, Options{Jobs: 1})
	require.NoError(t, err)
	require.Len(t, rep.Problems, 2)
	assert.Equal(t, Content, rep.Problems[0].Kind)
	assert.Equal(t, Content, rep.Problems[1].Kind)
}

func TestDir_NoManifest(t *testing.T) {
	_, err := Dir(context.Background(), t.TempDir(), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}
