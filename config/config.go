package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/quantbay/simex/logging"
	"github.com/quantbay/simex/matching"
	"github.com/quantbay/simex/reporting"
)

// Config ties together all other application configuration types.
type Config struct {
	Logging   logging.Config   `group:"Logging" namespace:"logging"`
	Matching  matching.Config  `group:"Matching" namespace:"matching"`
	Reporting reporting.Config `group:"Reporting" namespace:"reporting"`
}

// NewDefaultConfig returns the default configuration for every package,
// as specified at the per package config level.
func NewDefaultConfig() Config {
	return Config{
		Logging:   logging.NewDefaultConfig(),
		Matching:  matching.NewDefaultConfig(),
		Reporting: reporting.NewDefaultConfig(),
	}
}

// Read loads a configuration file over the defaults, so a partial file
// only overrides what it names.
func Read(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	return &cfg, nil
}
