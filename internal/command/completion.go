// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/cacheprime/internal/meta"
)

const bashCompletionScript = `# bash completion for cacheprime
_cacheprime()
{
    local cur prev cmd
    COMPREPLY=()
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}

    case "$prev" in
        --hash)
            COMPREPLY=( $(compgen -W "blake2b md5 sha256" -- "$cur") )
            return 0
            ;;
        --encoding)
            COMPREPLY=( $(compgen -W "hex raw" -- "$cur") )
            return 0
            ;;
        --output|-o)
            COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
            return 0
            ;;
    esac

    cmd=${COMP_WORDS[1]}
    case "$cmd" in
        verify)
            local opts="--jobs -j --output -o --color --no-color"
            ;;
        push)
            local opts="--bucket --prefix --region --profile --endpoint"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts="verify push completion --total-size -t --block-size -b --hash --encoding --summary -s --color --no-color --help --version"
            ;;
    esac

    if [[ "$cur" == -* || ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    else
        COMPREPLY=( $(compgen -d -- "$cur") )
    fi
}
complete -F _cacheprime cacheprime
`

const zshCompletionScript = `#compdef cacheprime

_cacheprime() {
  local -a cmds
  cmds=(
    'verify:check generated blocks against the manifest'
    'push:upload generated blocks and manifest to S3'
    'completion:generate shell completion script'
  )

  case $words[2] in
    verify)
      _arguments -C \
        '(-j --jobs)'{-j,--jobs}'[blocks checked in parallel]:jobs' \
        '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)' \
        '::data_dir:_directories'
      ;;
    push)
      _arguments -C \
        '--bucket[destination bucket]:bucket' \
        '--prefix[key prefix]:prefix' \
        '--region[AWS region]:region' \
        '--profile[AWS profile]:profile' \
        '--endpoint[S3 endpoint URL]:url' \
        '::data_dir:_directories'
      ;;
    completion)
      _values 'shell' bash zsh
      ;;
    *)
      _arguments -C \
        '(-t --total-size)'{-t,--total-size}'[total bytes]:size' \
        '(-b --block-size)'{-b,--block-size}'[bytes per block]:size' \
        '--hash[digest]:hash:(blake2b md5 sha256)' \
        '--encoding[digest layout]:encoding:(hex raw)' \
        '(-s --summary)'{-s,--summary}'[print summary]' \
        '1: :->first'
      if [[ $state == first ]]; then
        _describe -t commands 'cacheprime commands' cmds
        _directories
      fi
      ;;
  esac
}

compdef _cacheprime cacheprime
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	out := GetMeta(cmd).Out()

	shell := cmd.Args().First()
	if shell == "" {
		// Try to detect from SHELL
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(out, bashCompletionScript)
	case "zsh":
		fmt.Fprint(out, zshCompletionScript)
	default:
		return fmt.Errorf("usage: cacheprime completion [bash|zsh]")
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "cacheprime completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
