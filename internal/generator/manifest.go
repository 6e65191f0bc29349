// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"

	"github.com/staranto/cacheprime/internal/digest"
)

// ManifestName is the fixed file name of the manifest inside the data dir.
const ManifestName = "cache_metadata.json"

// CreatedLayout is the format of Manifest.Created.
const CreatedLayout = "2006-01-02 15:04:05"

// Manifest summarizes a generation run.
type Manifest struct {
	Blocks    int64  `json:"blocks"`
	BlockSize int64  `json:"block_size"`
	TotalSize int64  `json:"total_size"`
	Created   string `json:"created"`
	DataDir   string `json:"data_dir"`
	Hash      string `json:"hash,omitempty"`
	Encoding  string `json:"encoding,omitempty"`
}

// ManifestPath is where the manifest for dir lives.
func ManifestPath(dir string) string {
	return filepath.Join(dir, ManifestName)
}

// Pattern resolves the manifest's hash and encoding.
func (m Manifest) Pattern() (digest.Pattern, error) {
	return digest.NewPattern(m.Hash, m.Encoding)
}

// WriteManifest serializes m with a four space indent into dir.
func WriteManifest(dir string, m Manifest) (string, error) {
	b, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}
	b = append(b, '\n')

	p := ManifestPath(dir)
	if err := os.WriteFile(p, b, 0o644); err != nil { //nolint:mnd
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}
	return p, nil
}

// ReadManifest loads the manifest from dir. Manifests written before hash and
// encoding were recorded are md5 hex, which is what they default to.
func ReadManifest(dir string) (Manifest, error) {
	p := ManifestPath(dir)
	b, err := os.ReadFile(p)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest: %w", err)
	}
	if !gjson.ValidBytes(b) {
		return Manifest{}, fmt.Errorf("manifest %s is not valid JSON", p)
	}

	r := gjson.ParseBytes(b)
	for _, k := range []string{"blocks", "block_size"} {
		if !r.Get(k).Exists() {
			return Manifest{}, fmt.Errorf("manifest %s is missing %q", p, k)
		}
	}

	m := Manifest{
		Blocks:    r.Get("blocks").Int(),
		BlockSize: r.Get("block_size").Int(),
		TotalSize: r.Get("total_size").Int(),
		Created:   r.Get("created").String(),
		DataDir:   r.Get("data_dir").String(),
		Hash:      r.Get("hash").String(),
		Encoding:  r.Get("encoding").String(),
	}
	if m.Hash == "" {
		m.Hash = digest.MD5
	}
	if m.Encoding == "" {
		m.Encoding = digest.Hex
	}
	return m, nil
}
