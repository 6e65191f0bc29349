// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/staranto/cacheprime/internal/meta"
)

const rootUsage = "cacheprime [options] <data_dir>"

// InitApp builds the command tree. Generation is the root action so that the
// bare `cacheprime <data_dir>` form works; verify, push and completion are
// subcommands.
func InitApp(ctx context.Context, m meta.Meta) (*cli.Command, error) {
	if m.Context == nil {
		m.Context = ctx
	}
	cfgPath := m.Config.Source

	app := &cli.Command{
		Name:      "cacheprime",
		Usage:     "generate deterministic filler data for benchmark priming",
		UsageText: rootUsage,
		ArgsUsage: "<data_dir>",
		Writer:    m.Out(),
		ErrWriter: m.Err(),
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: append(NewGenerateFlags(cfgPath),
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "cacheprime version info",
				HideDefault: true,
			},
		),
		Action: GenerateCommandAction,
	}

	app.Commands = append(app.Commands,
		VerifyCommandBuilder(app, m, cfgPath),
		PushCommandBuilder(app, m, cfgPath),
		CompletionCommandBuilder(app, m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range append([]*cli.Command{app}, app.Commands...) {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
