// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package generator writes a directory of fixed-size block files whose content
// is derived from the block index, plus a JSON manifest describing the run.
// Existing blocks are never rewritten, so a run can be repeated to fill in
// whatever is missing.
package generator
