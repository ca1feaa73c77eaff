package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Effect     string // empty means every registered effect
	PresetPath string // preset file or directory, optional
	LockPath   string // schema lock file, optional
	WriteLock  bool   // write the lock file instead of checking it

	Output    string // describe output format: text or json
	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Output != "text" && cfg.Output != "json" {
		return nil, errors.New("Output must be 'text' or 'json'")
	}
	if cfg.WriteLock && cfg.LockPath == "" {
		return nil, errors.New("WriteLock requires LockPath to be set")
	}

	return &cfg, nil
}
