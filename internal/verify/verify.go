// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package verify checks a generated data directory against its manifest.
package verify

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/apex/log"
	"golang.org/x/sync/errgroup"

	"github.com/staranto/cacheprime/internal/generator"
)

// Problem kinds.
const (
	Missing = "missing"
	Size    = "size"
	Content = "content"
)

// Problem is one block that does not match the manifest.
type Problem struct {
	Index  int64
	Name   string
	Kind   string
	Detail string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s (%s)", p.Name, p.Kind, p.Detail)
}

// Report is the outcome of checking a directory.
type Report struct {
	Manifest generator.Manifest
	Checked  int64
	Problems []Problem
}

// OK reports whether every block matched.
func (r Report) OK() bool {
	return len(r.Problems) == 0
}

// Options tunes Dir.
type Options struct {
	// Jobs bounds the number of blocks read at once. Zero means GOMAXPROCS.
	Jobs int
}

// Dir re-derives every block listed in dir's manifest and compares it with
// what is on disk. Block problems land in the Report; only I/O failures other
// than a missing block are returned as errors.
func Dir(ctx context.Context, dir string, opts Options) (Report, error) {
	m, err := generator.ReadManifest(dir)
	if err != nil {
		return Report{}, err
	}
	pattern, err := m.Pattern()
	if err != nil {
		return Report{}, fmt.Errorf("manifest pattern: %w", err)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	log.Debugf("verifying %d blocks in %s with %d jobs", m.Blocks, dir, jobs)

	var (
		mu       sync.Mutex
		problems []Problem
	)
	report := func(p Problem) {
		mu.Lock()
		problems = append(problems, p)
		mu.Unlock()
	}

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)
	for i := int64(0); i < m.Blocks; i++ {
		if gctx.Err() != nil {
			break
		}
		group.Go(func() error {
			p, err := checkBlock(generator.BlockPath(dir, i), pattern.Seed(i), m.BlockSize)
			if err != nil {
				return fmt.Errorf("failed to check block %d: %w", i, err)
			}
			if p != nil {
				p.Index = i
				p.Name = generator.BlockName(i)
				report(*p)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	sort.Slice(problems, func(i, j int) bool { return problems[i].Index < problems[j].Index })
	return Report{Manifest: m, Checked: m.Blocks, Problems: problems}, nil
}

func checkBlock(path string, seed []byte, size int64) (*Problem, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Problem{Kind: Missing, Detail: "no such file"}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() != size {
		return &Problem{Kind: Size, Detail: fmt.Sprintf("want %d bytes, have %d", size, info.Size())}, nil
	}

	cw := &compareWriter{r: bufio.NewReaderSize(f, 1<<20)}
	if _, err := generator.Fill(cw, seed, size); err != nil {
		if errors.Is(err, errMismatch) {
			return &Problem{Kind: Content, Detail: fmt.Sprintf("first difference near byte %d", cw.offset)}, nil
		}
		return nil, err
	}
	return nil, nil
}

var errMismatch = errors.New("content mismatch")

// compareWriter consumes expected bytes and checks them against r.
type compareWriter struct {
	r      io.Reader
	buf    []byte
	offset int64
}

func (c *compareWriter) Write(p []byte) (int, error) {
	if cap(c.buf) < len(p) {
		c.buf = make([]byte, len(p))
	}
	got := c.buf[:len(p)]
	if _, err := io.ReadFull(c.r, got); err != nil {
		return 0, err
	}
	if !bytes.Equal(got, p) {
		return 0, errMismatch
	}
	c.offset += int64(len(p))
	return len(p), nil
}
