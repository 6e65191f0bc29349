// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output renders run summaries as tables and reports as JSON or YAML.
package output
