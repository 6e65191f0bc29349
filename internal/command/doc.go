// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the CLI for cacheprime. Generation is the root
// action; verify, push and completion are subcommands.
package command
