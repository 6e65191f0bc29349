// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/staranto/cacheprime/internal/meta"
)

// ErrUsage is returned when the data directory argument is missing. The usage
// text has already been printed by the time it is returned.
var ErrUsage = errors.New("usage")

// GetMeta returns the meta.Meta stored in the command's Metadata, walking up
// to the root if the command itself has none.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil {
		return meta.Meta{}
	}
	for _, c := range []*cli.Command{cmd, cmd.Root()} {
		if c == nil || c.Metadata == nil {
			continue
		}
		if m, ok := c.Metadata["meta"].(meta.Meta); ok {
			return m
		}
	}
	return meta.Meta{}
}

// DataDirArg returns the single positional data directory or prints usage and
// returns ErrUsage.
func DataDirArg(cmd *cli.Command, usage string) (string, error) {
	m := GetMeta(cmd)
	if cmd.NArg() < 1 || cmd.Args().First() == "" {
		fmt.Fprintf(m.Err(), "Usage: %s\n", usage)
		return "", ErrUsage
	}
	if cmd.NArg() > 1 {
		return "", fmt.Errorf("expected one data directory, got %d arguments: %v", cmd.NArg(), cmd.Args().Slice())
	}
	return cmd.Args().First(), nil
}
