package domain

// ConfigFileName is the configuration file searched for upward from the
// working directory.
const ConfigFileName = "carve.yaml"

// SearchPathEnv is the OS path-list environment variable appended to the
// configured library search paths.
const SearchPathEnv = "CARVEPATH"

// Config holds the resolved tool configuration.
type Config struct {
	// SearchPaths are the library directories consulted, in order, when a
	// reference is not found next to the referencing file.
	SearchPaths []string

	// Features is the set of enabled experimental language features.
	Features map[string]bool
}

// DefaultConfig returns the configuration used when no carve.yaml exists.
func DefaultConfig() *Config {
	return &Config{
		Features: make(map[string]bool),
	}
}

// FeatureEnabled reports whether the named experimental feature is enabled.
func (c *Config) FeatureEnabled(name string) bool {
	return c.Features[name]
}
