// Package config loads the engine's run-time settings from a TOML file.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the settings a chessuci process reads at startup. Anything
// not present in the file keeps its Default* value.
type Config struct {
	Search struct {
		DefaultDepth int `toml:"default_depth"`
	} `toml:"search"`

	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`

	Store struct {
		Path string `toml:"path"`
	} `toml:"store"`

	Render struct {
		SquareSize int `toml:"square_size"`
	} `toml:"render"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	var c Config
	c.Search.DefaultDepth = 4
	c.Log.Level = "info"
	c.Store.Path = "chesscore.db"
	c.Render.SquareSize = 45
	return c
}

// Load reads and decodes a TOML file at path, starting from Default() so an
// incomplete file still produces a usable Config.
func Load(path string) (Config, error) {
	c := Default()
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Config{}, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return c, nil
}
