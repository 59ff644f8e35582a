package matching

import (
	"github.com/quantbay/simex/config/encoding"
	"github.com/quantbay/simex/logging"
)

// namedLogger is the identifier for package and should ideally match the package name
// this is simply emitted as a hierarchical label.
const namedLogger = "matching"

// Config represents the configuration of the matching engine.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`

	// LogPriceLevelsDebug logs the state of each price level touched
	// while uncrossing, only read when the level is debug.
	LogPriceLevelsDebug bool `long:"log-price-levels-debug"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:               encoding.LogLevel{Level: logging.InfoLevel},
		LogPriceLevelsDebug: false,
	}
}
