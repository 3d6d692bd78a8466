// Package config holds the indexer's settings. Values come from built-in
// defaults, an optional TOML file, and command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultFile is the config file read from the working directory when no
// explicit path is given.
const DefaultFile = "postindex.toml"

// Config is the full set of pipeline settings.
type Config struct {
	// Source is the content root holding one subdirectory per post.
	Source string `toml:"source"`
	// Output is the path of the JSON index artifact.
	Output string `toml:"output"`
	// Document is the primary document name inside each post directory.
	Document string `toml:"document"`
	// URLPrefix is joined with a post's slug to form its URL.
	URLPrefix string `toml:"url_prefix"`
	// IncludeDrafts keeps posts marked `draft: true` in the index.
	IncludeDrafts bool `toml:"include_drafts"`
	// Strict makes any skipped post fail the run after the index is written.
	Strict bool `toml:"strict"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Source:    "src/content/blog",
		Output:    "public/posts.json",
		Document:  "index.md",
		URLPrefix: "/blog/",
	}
}

// Load returns Default overlaid with the TOML file at path. An empty path
// means DefaultFile, and a missing DefaultFile is not an error. A missing
// explicit path is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return cfg, fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Validate checks that the settings can drive a run.
func (c Config) Validate() error {
	if c.Source == "" {
		return errors.New("source directory is empty")
	}
	if c.Output == "" {
		return errors.New("output path is empty")
	}
	if c.Document == "" {
		return errors.New("document name is empty")
	}
	if strings.ContainsAny(c.Document, `/\`) {
		return fmt.Errorf("document name %q must not contain a path separator", c.Document)
	}
	return nil
}
