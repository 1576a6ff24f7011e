package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/binder/internal/paths"
	"github.com/mesh-intelligence/binder/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyOutput   = "output"
	cfgKeyLogLevel = "log_level"
	cfgKeyDatabase = "database"
	cfgKeyDataDir  = "data_dir"
)

// configFile is the structure written to config.yaml by "binder init".
type configFile struct {
	Output   string `yaml:"output"`
	LogLevel string `yaml:"log_level"`
	Database string `yaml:"database"`
	DataDir  string `yaml:"data_dir,omitempty"`
}

// loaded data_dir value, consumed by resolveDataDir.
var configDataDir string

// loadConfig reads config.yaml from configDir using Viper. A missing file
// is not an error; defaults apply. BINDER_OUTPUT, BINDER_LOG_LEVEL and
// BINDER_DATABASE override the file.
func loadConfig(configDir string) (types.Config, error) {
	def := types.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyOutput, def.Output)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeyDatabase, def.Database)
	v.SetDefault(cfgKeyDataDir, "")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("BINDER")
	for _, key := range []string{cfgKeyOutput, cfgKeyLogLevel, cfgKeyDatabase} {
		if err := v.BindEnv(key); err != nil {
			return types.Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	configDataDir = v.GetString(cfgKeyDataDir)
	return types.Config{
		Output:   v.GetString(cfgKeyOutput),
		LogLevel: v.GetString(cfgKeyLogLevel),
		Database: v.GetString(cfgKeyDatabase),
	}, nil
}

// writeConfigIfMissing creates config.yaml holding c. An existing file is
// left alone and reported as not written.
func writeConfigIfMissing(configDir string, c types.Config, dataDir string) (bool, error) {
	path := filepath.Join(configDir, paths.ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&configFile{
		Output:   c.Output,
		LogLevel: c.LogLevel,
		Database: c.Database,
		DataDir:  dataDir,
	})
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config dir: %w", err)
	}
	return true, os.WriteFile(path, data, 0o644)
}

// resolveDataDir applies --data-dir > config.yaml > env > platform default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flags.dataDir, configDataDir)
}

// databasePath returns the database file for query and exec.
func databasePath(override string) (string, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return "", err
	}
	name := cfg.Database
	if override != "" {
		name = override
	}
	return paths.DatabasePath(dataDir, name), nil
}
