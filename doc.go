// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// cacheprime writes deterministic filler data used to prime benchmark hosts.
// It wires the CLI, delegates to internal packages, and serves as the entry
// point.
package main
