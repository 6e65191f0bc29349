// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cacheprime/internal/digest"
)

// sources builds the value chain for a flag: the env var first, then each
// dotted key in the config file at cfgPath, in order.
func sources(cfgPath string, env string, keys ...string) cli.ValueSourceChain {
	chain := cli.NewValueSourceChain(cli.EnvVar(env))
	if cfgPath == "" {
		return chain
	}
	for _, k := range keys {
		chain.Chain = append(chain.Chain, yaml.YAML(k, altsrc.StringSourcer(cfgPath)))
	}
	return chain
}

// NewGenerateFlags are the flags of the root (generate) command.
func NewGenerateFlags(cfgPath string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "total-size",
			Aliases: []string{"t"},
			Usage:   "total bytes to generate, e.g. 100GiB",
			Sources: sources(cfgPath, "CACHEPRIME_TOTAL_SIZE", "total-size"),
			Value:   "100GiB",
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, SizeValidator)
			},
		},
		&cli.StringFlag{
			Name:    "block-size",
			Aliases: []string{"b"},
			Usage:   "bytes per block file, e.g. 1GiB",
			Sources: sources(cfgPath, "CACHEPRIME_BLOCK_SIZE", "block-size"),
			Value:   "1GiB",
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, SizeValidator)
			},
		},
		&cli.StringFlag{
			Name:    "hash",
			Usage:   "digest used to seed block content",
			Sources: sources(cfgPath, "CACHEPRIME_HASH", "hash"),
			Value:   digest.MD5,
			Validator: func(value string) error {
				return FlagValidators(value, HashValidator)
			},
		},
		&cli.StringFlag{
			Name:    "encoding",
			Usage:   "how the digest is laid out in a block (raw or hex)",
			Sources: sources(cfgPath, "CACHEPRIME_ENCODING", "encoding"),
			Value:   digest.Raw,
			Validator: func(value string) error {
				return FlagValidators(value, EncodingValidator)
			},
		},
		&cli.BoolFlag{
			Name:        "summary",
			Aliases:     []string{"s"},
			Usage:       "print a summary table when done",
			Sources:     sources(cfgPath, "CACHEPRIME_SUMMARY", "summary"),
			HideDefault: true,
		},
		colorFlag(cfgPath),
	}
}

// NewVerifyFlags are the flags of the verify command.
func NewVerifyFlags(cfgPath string) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "jobs",
			Aliases: []string{"j"},
			Usage:   "blocks checked in parallel, 0 for one per CPU",
			Sources: sources(cfgPath, "CACHEPRIME_JOBS", "verify.jobs", "jobs"),
			Value:   0,
			Validator: func(value int) error {
				return FlagValidators(value, NonNegativeValidator)
			},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: sources(cfgPath, "CACHEPRIME_OUTPUT", "verify.output", "output"),
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		colorFlag(cfgPath),
	}
}

// NewPushFlags are the flags of the push command.
func NewPushFlags(cfgPath string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "bucket",
			Usage:   "destination S3 bucket",
			Sources: sources(cfgPath, "CACHEPRIME_BUCKET", "push.bucket"),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.StringFlag{
			Name:    "prefix",
			Usage:   "key prefix inside the bucket",
			Sources: sources(cfgPath, "CACHEPRIME_PREFIX", "push.prefix"),
		},
		&cli.StringFlag{
			Name:    "region",
			Usage:   "AWS region. Defaults to the AWS config chain",
			Sources: sources(cfgPath, "CACHEPRIME_REGION", "push.region"),
		},
		&cli.StringFlag{
			Name:    "profile",
			Usage:   "AWS shared config profile",
			Sources: sources(cfgPath, "CACHEPRIME_PROFILE", "push.profile"),
		},
		&cli.StringFlag{
			Name:    "endpoint",
			Usage:   "S3 compatible endpoint URL, enables path-style addressing",
			Sources: sources(cfgPath, "CACHEPRIME_ENDPOINT", "push.endpoint"),
		},
	}
}

func colorFlag(cfgPath string) cli.Flag {
	return &cli.BoolWithInverseFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "enable colored summary output",
		Sources: sources(cfgPath, "CACHEPRIME_COLOR", "color"),
		Value:   true,
	}
}
