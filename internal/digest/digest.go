// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"

	"golang.org/x/crypto/blake2b"
)

const (
	MD5     = "md5"
	SHA256  = "sha256"
	Blake2b = "blake2b"

	Hex = "hex"
	Raw = "raw"
)

// Func hashes the decimal form of a block index.
type Func func(index int64) []byte

var funcs = map[string]Func{
	MD5: func(index int64) []byte {
		sum := md5.Sum([]byte(strconv.FormatInt(index, 10)))
		return sum[:]
	},
	SHA256: func(index int64) []byte {
		sum := sha256.Sum256([]byte(strconv.FormatInt(index, 10)))
		return sum[:]
	},
	Blake2b: func(index int64) []byte {
		sum := blake2b.Sum256([]byte(strconv.FormatInt(index, 10)))
		return sum[:]
	},
}

// Names returns the supported hash names, sorted.
func Names() []string {
	names := make([]string, 0, len(funcs))
	for n := range funcs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Encodings returns the supported pattern encodings.
func Encodings() []string {
	return []string{Hex, Raw}
}

// New returns the hash function registered under name.
func New(name string) (Func, error) {
	f, ok := funcs[name]
	if !ok {
		return nil, fmt.Errorf("unknown hash %q, must be one of %v", name, Names())
	}
	return f, nil
}

// Encode turns a digest into the pattern that gets repeated through a block.
// Hex is the lowercase hex string (32 bytes for md5), raw is the digest itself.
func Encode(encoding string, sum []byte) ([]byte, error) {
	switch encoding {
	case Hex:
		out := make([]byte, hex.EncodedLen(len(sum)))
		hex.Encode(out, sum)
		return out, nil
	case Raw:
		out := make([]byte, len(sum))
		copy(out, sum)
		return out, nil
	default:
		return nil, fmt.Errorf("unknown encoding %q, must be one of %v", encoding, Encodings())
	}
}

// Pattern is a resolved hash and encoding pair.
type Pattern struct {
	Hash     string
	Encoding string
	fn       Func
}

// NewPattern validates hash and encoding up front so that Seed cannot fail.
func NewPattern(hash, encoding string) (Pattern, error) {
	fn, err := New(hash)
	if err != nil {
		return Pattern{}, err
	}
	if _, err := Encode(encoding, nil); err != nil {
		return Pattern{}, err
	}
	return Pattern{Hash: hash, Encoding: encoding, fn: fn}, nil
}

// Seed returns the repeating unit for the block at index.
func (p Pattern) Seed(index int64) []byte {
	out, _ := Encode(p.Encoding, p.fn(index))
	return out
}
