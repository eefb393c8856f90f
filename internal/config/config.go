// Package config loads the engine server's runtime configuration from
// a TOML file, falling back to documented defaults for any field the
// file omits.
package config

import (
	"github.com/BurntSushi/toml"
)

// Config holds the settings the HTTP facade and search engine need at
// startup.
type Config struct {
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string `toml:"listen_addr"`
	// DefaultDepth is used for requests that omit an explicit depth.
	DefaultDepth int `toml:"default_depth"`
	// MaxDepth clamps any request depth above it.
	MaxDepth int `toml:"max_depth"`
	// TranspositionTableSizeHint presizes the engine's transposition
	// table map at the start of every search (search.NewEngineWithCapacity),
	// avoiding incremental rehashing when the expected peak entry count
	// is known; it does not bound the table, which is still cleared and
	// can grow past the hint.
	TranspositionTableSizeHint int `toml:"transposition_table_size_hint"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		ListenAddr:                 ":8080",
		DefaultDepth:               4,
		MaxDepth:                   6,
		TranspositionTableSizeHint: 1 << 16,
	}
}

// Load reads and decodes the TOML file at path, starting from
// [Default] so that a partial file only overrides the fields it sets.
func Load(path string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}
