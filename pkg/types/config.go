package types

import "errors"

// Config holds the settings the binder CLI reads from config.yaml.
type Config struct {
	Output   string `json:"output" yaml:"output"`
	LogLevel string `json:"log_level" yaml:"log_level"`
	Database string `json:"database" yaml:"database"`
}

// Supported output modes.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config validation errors.
var (
	ErrOutputUnknown   = errors.New("unknown output mode")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

var knownOutputs = map[string]bool{
	OutputText: true,
	OutputJSON: true,
}

var knownLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"off":   true,
}

// DefaultConfig returns the configuration used when config.yaml sets nothing.
func DefaultConfig() Config {
	return Config{
		Output:   OutputText,
		LogLevel: "info",
		Database: "binder.db",
	}
}

// Validate checks that the Config is well-formed. An empty Output or LogLevel
// is accepted and means the default. It returns a sentinel error from this
// package on failure.
func (c Config) Validate() error {
	if c.Output != "" && !knownOutputs[c.Output] {
		return ErrOutputUnknown
	}
	if c.LogLevel != "" && !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	return nil
}
