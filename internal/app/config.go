package app

import "errors"

// Config holds everything an App instance needs to run.
type Config struct {
	BuildPath   string // build description .hcl file or directory
	BundlesPath string // bundle registry .hcl files

	OutPath   string // plan JSON destination; empty means stdout
	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.BuildPath == "" {
		return nil, errors.New("BuildPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
