// Package config loads shell settings from the configuration directory.
// Sources, lowest precedence first: built-in defaults, config.yaml,
// MAESTRO_* environment variables (including those set by an optional .env
// file in the same directory).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/maestro/internal/logging"
	"github.com/mesh-intelligence/maestro/internal/paths"
	"github.com/mesh-intelligence/maestro/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "MAESTRO"

	// Config keys.
	KeyBackend   = "backend"
	KeySeed      = "seed"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// Defaults returns the configuration used when nothing overrides it.
func Defaults() types.Config {
	return types.Config{
		Backend:   types.BackendMemory,
		Seed:      true,
		LogLevel:  logging.DefaultLevel,
		LogFormat: logging.FormatText,
	}
}

// Load reads the configuration from configDir. A missing config.yaml or .env
// is not an error. The result is validated.
func Load(configDir string) (types.Config, error) {
	if err := loadEnvFile(configDir); err != nil {
		return types.Config{}, err
	}

	def := Defaults()
	v := viper.New()
	v.SetDefault(KeyBackend, def.Backend)
	v.SetDefault(KeySeed, def.Seed)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyLogFormat, def.LogFormat)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		Backend:   v.GetString(KeyBackend),
		Seed:      v.GetBool(KeySeed),
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: v.GetString(KeyLogFormat),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadEnvFile applies the .env file in configDir, if any. Variables already
// present in the environment win.
func loadEnvFile(configDir string) error {
	path := paths.EnvFile(configDir)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", paths.EnvFileName, err)
	}
	return nil
}

// WriteDefault creates configDir and writes config.yaml with default values
// if the file does not exist. Returns whether a file was written.
func WriteDefault(configDir string) (bool, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}

	path := paths.ConfigFile(configDir)
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(Defaults())
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# maestro shell configuration\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
