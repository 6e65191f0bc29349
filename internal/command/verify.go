// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cacheprime/internal/meta"
	"github.com/staranto/cacheprime/internal/output"
	"github.com/staranto/cacheprime/internal/verify"
)

const verifyUsage = "cacheprime verify [options] <data_dir>"

// reportView is the JSON/YAML shape of a verify report.
type reportView struct {
	DataDir  string        `json:"data_dir" yaml:"data_dir"`
	Blocks   int64         `json:"blocks" yaml:"blocks"`
	Hash     string        `json:"hash" yaml:"hash"`
	Encoding string        `json:"encoding" yaml:"encoding"`
	OK       bool          `json:"ok" yaml:"ok"`
	Problems []problemView `json:"problems" yaml:"problems"`
}

type problemView struct {
	Block  string `json:"block" yaml:"block"`
	Kind   string `json:"kind" yaml:"kind"`
	Detail string `json:"detail" yaml:"detail"`
}

// VerifyCommandAction checks every block named in the manifest.
func VerifyCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing verify for %v", m.Args)

	dir, err := DataDirArg(cmd, verifyUsage)
	if err != nil {
		return err
	}

	rep, err := verify.Dir(ctx, dir, verify.Options{Jobs: int(cmd.Int("jobs"))})
	if err != nil {
		return err
	}

	switch format := cmd.String("output"); format {
	case "json", "yaml":
		view := reportView{
			DataDir:  dir,
			Blocks:   rep.Checked,
			Hash:     rep.Manifest.Hash,
			Encoding: rep.Manifest.Encoding,
			OK:       rep.OK(),
			Problems: []problemView{},
		}
		for _, p := range rep.Problems {
			view.Problems = append(view.Problems, problemView{Block: p.Name, Kind: p.Kind, Detail: p.Detail})
		}
		if err := output.Emit(m.Out(), format, view); err != nil {
			return err
		}
	default:
		for _, p := range rep.Problems {
			fmt.Fprintln(m.Out(), p.String())
		}
		output.Summary(m.Out(), "Verification summary", []output.Row{
			{"data dir", dir},
			{"blocks", strconv.FormatInt(rep.Checked, 10)},
			{"problems", strconv.Itoa(len(rep.Problems))},
			{"pattern", rep.Manifest.Hash + "/" + rep.Manifest.Encoding},
		}, cmd.Bool("color"))
	}

	if !rep.OK() {
		return fmt.Errorf("%d of %d blocks failed verification", len(rep.Problems), rep.Checked)
	}
	return nil
}

func VerifyCommandBuilder(root *cli.Command, m meta.Meta, cfgPath string) *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "check generated blocks against the manifest",
		UsageText: verifyUsage,
		ArgsUsage: "<data_dir>",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: NewVerifyFlags(cfgPath),
		Action: VerifyCommandAction,
	}
}
