// Package config loads the optional luastubs.toml project file.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "luastubs.toml"

type Config struct {
	Source Source `toml:"source"`
	Output Output `toml:"output"`
	Filter Filter `toml:"filter"`
}

type Source struct {
	URL       string `toml:"url"`
	File      string `toml:"file"`
	UserAgent string `toml:"user_agent"`
}

type Output struct {
	Dir       string `toml:"dir"`
	Extension string `toml:"extension"`
	Index     string `toml:"index"`
}

type Filter struct {
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a config file and fills in defaults for anything left empty.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Newf("config %s: unknown key %s", path, undecoded[0].String())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadOrDefault loads path when it exists. A missing file at the default
// location is not an error; a missing file the user asked for is.
func LoadOrDefault(path string, explicit bool) (*Config, error) {
	if _, err := os.Stat(path); err != nil && !explicit && os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) applyDefaults() {
	if c.Source.File == "" {
		c.Source.File = "api.json"
	}
	if c.Source.UserAgent == "" {
		c.Source.UserAgent = "luastubs"
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "library"
	}
	if c.Output.Extension == "" {
		c.Output.Extension = ".lua"
	}
	if c.Output.Index == "" {
		c.Output.Index = "globals.lua"
	}
}

// Starter is the config file written by `luastubs init`.
const Starter = `# luastubs project configuration

[source]
# Where ` + "`luastubs fetch`" + ` downloads the API document from.
url = ""
# Local path of the API document (.json, .yaml or .yml).
file = "api.json"

[output]
dir = "library"
extension = ".lua"
index = "globals.lua"

[filter]
# Glob patterns over module keys, e.g. ["lovr.*"]. Empty includes everything.
include = []
exclude = []
`
