// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Unknown(t *testing.T) {
	_, err := New("crc32")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown hash")
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"blake2b", "md5", "sha256"}, Names())
}

func TestSeed(t *testing.T) {
	tests := []struct {
		name     string
		hash     string
		encoding string
		index    int64
		want     string
		wantLen  int
	}{
		{
			// Matches md5("0") from the original shell tooling.
			name:     "md5 hex of zero",
			hash:     MD5,
			encoding: Hex,
			index:    0,
			want:     "cfcd208495d565ef66e7dff9f98764da",
			wantLen:  32,
		},
		{
			name:     "md5 hex of one",
			hash:     MD5,
			encoding: Hex,
			index:    1,
			want:     "c4ca4238a0b923820dcc509a6f75849b",
			wantLen:  32,
		},
		{
			name:     "md5 raw",
			hash:     MD5,
			encoding: Raw,
			index:    0,
			wantLen:  16,
		},
		{
			name:     "sha256 hex of zero",
			hash:     SHA256,
			encoding: Hex,
			index:    0,
			want:     "5feceb66ffc86f38d952786c6d696c79c2dbc239dd4e91b46729d73a27fb57e9",
			wantLen:  64,
		},
		{
			name:     "blake2b raw",
			hash:     Blake2b,
			encoding: Raw,
			index:    7,
			wantLen:  32,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPattern(tt.hash, tt.encoding)
			require.NoError(t, err)

			got := p.Seed(tt.index)
			assert.Len(t, got, tt.wantLen)
			if tt.want != "" {
				assert.Equal(t, tt.want, string(got))
			}
			assert.Equal(t, got, p.Seed(tt.index), "seed must be repeatable")
		})
	}
}

func TestSeed_DistinctFirstBytes(t *testing.T) {
	// Single-byte blocks only stay distinct if the first pattern byte differs.
	p, err := NewPattern(MD5, Raw)
	require.NoError(t, err)

	seen := map[byte]int64{}
	for i := int64(0); i < 3; i++ {
		b := p.Seed(i)[0]
		_, dup := seen[b]
		assert.False(t, dup, "index %d repeats first byte %x", i, b)
		seen[b] = i
	}
}

func TestNewPattern_BadEncoding(t *testing.T) {
	_, err := NewPattern(MD5, "base64")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown encoding")
}
