// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"errors"
	"fmt"

	"github.com/staranto/cacheprime/internal/digest"
)

// ErrInvalidRequest is wrapped by every validation failure from Request.Validate.
var ErrInvalidRequest = errors.New("invalid generation request")

const (
	DefaultTotalSize = 100 << 30
	DefaultBlockSize = 1 << 30
)

// Request describes one generation run.
type Request struct {
	Dir       string
	TotalSize int64
	BlockSize int64
	Hash      string
	Encoding  string
}

// NewRequest returns a Request for dir with the default sizes and pattern.
func NewRequest(dir string) Request {
	return Request{
		Dir:       dir,
		TotalSize: DefaultTotalSize,
		BlockSize: DefaultBlockSize,
		Hash:      digest.MD5,
		Encoding:  digest.Raw,
	}
}

// Validate checks the request before anything touches the disk.
func (r Request) Validate() error {
	if r.Dir == "" {
		return fmt.Errorf("%w: data directory is required", ErrInvalidRequest)
	}
	if r.TotalSize <= 0 {
		return fmt.Errorf("%w: total size must be positive, got %d", ErrInvalidRequest, r.TotalSize)
	}
	if r.BlockSize <= 0 {
		return fmt.Errorf("%w: block size must be positive, got %d", ErrInvalidRequest, r.BlockSize)
	}
	if r.TotalSize%r.BlockSize != 0 {
		return fmt.Errorf("%w: total size %d is not a multiple of block size %d",
			ErrInvalidRequest, r.TotalSize, r.BlockSize)
	}
	if _, err := digest.NewPattern(r.Hash, r.Encoding); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

// Blocks is the number of block files the request produces.
func (r Request) Blocks() int64 {
	if r.BlockSize <= 0 {
		return 0
	}
	return r.TotalSize / r.BlockSize
}
