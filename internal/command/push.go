// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"strconv"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	awsx "github.com/staranto/cacheprime/internal/aws"
	"github.com/staranto/cacheprime/internal/meta"
	"github.com/staranto/cacheprime/internal/output"
	"github.com/staranto/cacheprime/internal/push"
)

const pushUsage = "cacheprime push --bucket <bucket> [options] <data_dir>"

// newS3Client is swapped out in tests.
var newS3Client = func(ctx context.Context, opts ...awsx.Option) (push.API, error) {
	return awsx.NewS3(ctx, opts...)
}

// PushCommandAction uploads a generated directory to S3.
func PushCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing push for %v", m.Args)

	dir, err := DataDirArg(cmd, pushUsage)
	if err != nil {
		return err
	}

	target := push.Target{
		Bucket: cmd.String("bucket"),
		Prefix: cmd.String("prefix"),
	}
	if target.Bucket == "" {
		return errors.New("--bucket is required")
	}

	client, err := newS3Client(ctx,
		awsx.WithProfile(cmd.String("profile")),
		awsx.WithRegion(cmd.String("region")),
		awsx.WithEndpoint(cmd.String("endpoint")),
	)
	if err != nil {
		return err
	}

	res, err := push.Dir(ctx, client, dir, target, m.Out())
	if err != nil {
		return err
	}

	output.Summary(m.Out(), "Push summary", []output.Row{
		{"bucket", target.Bucket},
		{"prefix", target.Prefix},
		{"uploaded", strconv.FormatInt(res.Uploaded, 10)},
		{"skipped", strconv.FormatInt(res.Skipped, 10)},
		{"sent", output.Bytes(res.Bytes)},
	}, false)
	return nil
}

func PushCommandBuilder(root *cli.Command, m meta.Meta, cfgPath string) *cli.Command {
	return &cli.Command{
		Name:      "push",
		Usage:     "upload generated blocks and manifest to S3",
		UsageText: pushUsage,
		ArgsUsage: "<data_dir>",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: NewPushFlags(cfgPath),
		Action: PushCommandAction,
	}
}
