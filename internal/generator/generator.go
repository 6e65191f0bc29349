// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"

	"github.com/staranto/cacheprime/internal/digest"
)

// Result is what a run produced. Manifest is also what was written to disk.
type Result struct {
	Manifest     Manifest
	ManifestPath string
	Generated    int64
	Skipped      int64
	Written      int64
}

// Generator runs requests. The zero value writes progress nowhere and stamps
// manifests with time.Now.
type Generator struct {
	Out io.Writer
	Now func() time.Time
}

// Generate runs req with progress on stdout and returns the manifest.
func Generate(ctx context.Context, req Request) (Manifest, error) {
	g := &Generator{Out: os.Stdout}
	res, err := g.Generate(ctx, req)
	return res.Manifest, err
}

// Generate writes every missing block of req sequentially, then rewrites the
// manifest. Any filesystem error aborts the run; blocks already written stay.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	var res Result

	if err := req.Validate(); err != nil {
		return res, err
	}
	pattern, err := digest.NewPattern(req.Hash, req.Encoding)
	if err != nil {
		return res, err
	}

	out := g.Out
	if out == nil {
		out = io.Discard
	}

	dir := filepath.Clean(req.Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return res, fmt.Errorf("failed to create data directory: %w", err)
	}

	blocks := req.Blocks()
	log.Debugf("generating %d blocks of %d bytes in %s (%s/%s)",
		blocks, req.BlockSize, dir, pattern.Hash, pattern.Encoding)
	fmt.Fprintf(out, "Generating cache data files in %s...\n", dir)

	for i := int64(0); i < blocks; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		name := BlockName(i)
		path := filepath.Join(dir, name)

		_, err := os.Stat(path)
		switch {
		case err == nil:
			res.Skipped++
			fmt.Fprintf(out, "Skipping existing: %s\n", name)
			continue
		case !errors.Is(err, fs.ErrNotExist):
			return res, fmt.Errorf("failed to stat %s: %w", path, err)
		}

		if err := writeBlock(path, pattern.Seed(i), req.BlockSize); err != nil {
			// Someone else created it between the stat and the create.
			if errors.Is(err, fs.ErrExist) {
				log.Debugf("block %s appeared during run", name)
				res.Skipped++
				fmt.Fprintf(out, "Skipping existing: %s\n", name)
				continue
			}
			return res, fmt.Errorf("failed to generate block %d: %w", i, err)
		}

		res.Generated++
		res.Written += req.BlockSize
		fmt.Fprintf(out, "Generated: %s (%d/%d)\n", name, i+1, blocks)
	}

	now := time.Now
	if g.Now != nil {
		now = g.Now
	}

	res.Manifest = Manifest{
		Blocks:    blocks,
		BlockSize: req.BlockSize,
		TotalSize: req.TotalSize,
		Created:   now().Format(CreatedLayout),
		DataDir:   dir,
		Hash:      pattern.Hash,
		Encoding:  pattern.Encoding,
	}

	p, err := WriteManifest(dir, res.Manifest)
	if err != nil {
		return res, err
	}
	res.ManifestPath = p

	fmt.Fprintln(out, "Cache data generation complete!")
	fmt.Fprintf(out, "Metadata saved to %s\n", p)

	return res, nil
}
