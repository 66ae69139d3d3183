package config

// File represents the structure of the carve.yaml configuration file.
type File struct {
	Version string `yaml:"version"`

	// Libraries are library search directories, relative paths resolved
	// against the directory containing the configuration file.
	Libraries []string `yaml:"libraries"`

	// Features names the experimental language features to enable.
	Features []string `yaml:"features"`
}
