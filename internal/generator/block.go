// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const chunkTarget = 1 << 20

// BlockName is the file name of the block at index.
func BlockName(index int64) string {
	return fmt.Sprintf("cache_block_%d.dat", index)
}

// BlockPath joins dir and BlockName.
func BlockPath(dir string, index int64) string {
	return filepath.Join(dir, BlockName(index))
}

// Fill writes size bytes of seed, repeated and truncated, to w. Blocks can be
// far larger than memory, so the pattern is streamed in chunks whose length is a
// multiple of the seed; every chunk therefore starts at the same phase.
func Fill(w io.Writer, seed []byte, size int64) (int64, error) {
	if len(seed) == 0 {
		return 0, errors.New("empty seed")
	}

	reps := chunkTarget / len(seed)
	if reps < 1 {
		reps = 1
	}
	if int64(reps*len(seed)) > size {
		reps = int(size/int64(len(seed))) + 1
	}
	chunk := bytes.Repeat(seed, reps)

	var written int64
	for written < size {
		n := int64(len(chunk))
		if rem := size - written; rem < n {
			n = rem
		}
		m, err := w.Write(chunk[:n])
		written += int64(m)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// Content returns the full block in memory. Meant for small blocks and tests.
func Content(seed []byte, size int64) []byte {
	var buf bytes.Buffer
	_, _ = Fill(&buf, seed, size)
	return buf.Bytes()
}

// writeBlock creates path exclusively and fills it. The file is closed on every
// path and a close failure is reported like a write failure.
func writeBlock(path string, seed []byte, size int64) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) //nolint:mnd
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if _, err = Fill(f, seed, size); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
