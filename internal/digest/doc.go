// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package digest derives the fixed-length seed pattern that fills a block.
// Only reproducibility matters here, not cryptographic strength.
package digest
