// Package config loads the optional textcheck.toml: flag defaults plus
// per-language policy extensions.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the manifest discovered in the working directory.
const FileName = "textcheck.toml"

// Defaults supplies fallback values for analyze flags.
type Defaults struct {
	Language     string `toml:"language"`
	MaxExamples  int    `toml:"max_examples"`
	MaxLocations int    `toml:"max_locations"`
	LongTokenMin int    `toml:"long_token_min"`
	ShowAll      bool   `toml:"show_all"`
}

// LangOverride extends a built-in language policy.
type LangOverride struct {
	AllowedChars string   `toml:"allowed_chars"`
	Suppress     []string `toml:"suppress"`
	BenignWords  []string `toml:"benign_words"`
}

// File is the parsed manifest.
type File struct {
	Defaults Defaults                `toml:"defaults"`
	Lang     map[string]LangOverride `toml:"lang"`

	// HasDefaults reports whether [defaults] was present, so absent
	// sections never override flag values with zero values.
	HasDefaults bool `toml:"-"`
}

// Load parses a manifest file.
func Load(path string) (*File, error) {
	var f File
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	f.HasDefaults = meta.IsDefined("defaults")
	if f.Lang == nil {
		f.Lang = map[string]LangOverride{}
	}
	return &f, nil
}

// Discover looks for the manifest in dir. A missing file is not an
// error; the zero File applies.
func Discover(dir string) (*File, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return &File{Lang: map[string]LangOverride{}}, nil
		}
		return nil, err
	}
	return Load(path)
}
