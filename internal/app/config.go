package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Path points at a single .hcl file or a directory of .hcl files holding
	// kind manifests and process declarations.
	Path string

	// GraphName is the name the composed graph is built under. Empty selects
	// the default graph.
	GraphName string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Path == "" {
		return nil, errors.New("Path is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
