package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the optional skip-pattern file. It is only consulted when the
// user passes --config; nothing is read implicitly.
type Config struct {
	Skip []string `yaml:"skip"`
}

// Load reads a skip-pattern file. The file is always named explicitly, so a
// missing file is an error like any other: silently falling back would turn
// a typo'd path into an unexpected pattern set.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", path)
	}

	if cfg.Skip == nil {
		cfg.Skip = []string{}
	}
	return &cfg, nil
}
