package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"uast/internal/cache"
	"uast/internal/gast"
	"uast/internal/gast/wire"
)

// treeFormat is the on-disk encoding of a tree file.
type treeFormat uint8

const (
	formatJSON treeFormat = iota
	formatBinary
)

func (f treeFormat) String() string {
	if f == formatBinary {
		return "msgpack"
	}
	return "json"
}

// detectFormat picks the encoding from the extension, falling back to
// content sniffing: JSON trees always start with '{'.
func detectFormat(path string, data []byte) treeFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON
	case ".mp", ".msgpack", ".bin":
		return formatBinary
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return formatJSON
	}
	return formatBinary
}

// parseFormat validates an explicit --from/--to flag value.
func parseFormat(s string) (treeFormat, error) {
	switch strings.ToLower(s) {
	case "json":
		return formatJSON, nil
	case "msgpack", "mp", "bin":
		return formatBinary, nil
	default:
		return formatJSON, fmt.Errorf("unknown format %q (must be json or msgpack)", s)
	}
}

// loadTree reads and decodes one tree file. When a cache is supplied,
// hits skip decoding entirely: the cached binary form decodes faster
// than JSON and was validated when stored.
func loadTree(path string, dc *cache.DiskCache) (*gast.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	key := cache.Key(data)
	if dc != nil {
		var payload cache.Payload
		if hit, err := dc.Get(key, &payload); err == nil && hit {
			if p, err := wire.DecodeBinary(payload.Tree); err == nil {
				return p, nil
			}
			// A corrupt entry falls through to a fresh decode.
		}
	}

	var p *gast.Program
	switch detectFormat(path, data) {
	case formatJSON:
		p, err = wire.DecodeJSON(data)
	default:
		p, err = wire.DecodeBinary(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if dc != nil {
		if bin, err := wire.EncodeBinary(p); err == nil {
			_ = dc.Put(key, &cache.Payload{SourcePath: path, Tree: bin, Violations: -1})
		}
	}
	return p, nil
}

// openCache opens the configured disk cache, or returns nil when caching
// is disabled; a nil cache is inert.
func openCache() *cache.DiskCache {
	if !loadedConfig.Cache.Enabled {
		return nil
	}
	if dir := loadedConfig.Cache.Dir; dir != "" {
		dc, err := cache.OpenAt(dir)
		if err != nil {
			return nil
		}
		return dc
	}
	dc, err := cache.Open("uast")
	if err != nil {
		return nil
	}
	return dc
}
