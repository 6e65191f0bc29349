// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cacheprime/internal/generator"
	"github.com/staranto/cacheprime/internal/output"
)

// GenerateCommandAction writes the blocks and manifest for the data dir
// argument.
func GenerateCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	dir, err := DataDirArg(cmd, rootUsage)
	if err != nil {
		return err
	}

	req, err := requestFromFlags(cmd, dir)
	if err != nil {
		return err
	}
	log.Debugf("request: %+v", req)

	g := &generator.Generator{Out: m.Out()}
	res, err := g.Generate(ctx, req)
	if err != nil {
		return err
	}

	if cmd.Bool("summary") {
		output.Summary(m.Out(), "Generation summary", []output.Row{
			{"data dir", res.Manifest.DataDir},
			{"blocks", strconv.FormatInt(res.Manifest.Blocks, 10)},
			{"block size", output.Bytes(res.Manifest.BlockSize)},
			{"total size", output.Bytes(res.Manifest.TotalSize)},
			{"generated", strconv.FormatInt(res.Generated, 10)},
			{"skipped", strconv.FormatInt(res.Skipped, 10)},
			{"written", output.Bytes(res.Written)},
			{"pattern", res.Manifest.Hash + "/" + res.Manifest.Encoding},
		}, cmd.Bool("color"))
	}

	return nil
}

func requestFromFlags(cmd *cli.Command, dir string) (generator.Request, error) {
	total, err := parseSize(cmd.String("total-size"))
	if err != nil {
		return generator.Request{}, fmt.Errorf("--total-size: %w", err)
	}
	block, err := parseSize(cmd.String("block-size"))
	if err != nil {
		return generator.Request{}, fmt.Errorf("--block-size: %w", err)
	}

	req := generator.Request{
		Dir:       dir,
		TotalSize: total,
		BlockSize: block,
		Hash:      cmd.String("hash"),
		Encoding:  cmd.String("encoding"),
	}
	return req, req.Validate()
}
