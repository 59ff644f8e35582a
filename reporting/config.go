package reporting

// Config contains the configurable items for this package.
type Config struct {
	// NoColor disables ANSI colouring of section headers, useful when
	// the output is captured rather than read on a terminal.
	NoColor bool `long:"no-color"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		NoColor: false,
	}
}
