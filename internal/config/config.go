package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/openwith/sharext/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
	dotEnv   = ".env"
)

// Setting keys.
const (
	KeyDebug       = "debug"
	KeyLogLevel    = "log_level"
	KeyProjectRoot = "project_root"
	KeyShowSecrets = "show_secrets"
)

// DebugEnv is the variable the Cordova build sets for debug builds.
const DebugEnv = "IS_DEBUG"

// Dir returns the path to the config directory (~/.sharext/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.sharext/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// Variables from <projectRoot>/.env are exported first without overriding
// ones already set. IS_DEBUG and SHAREXT_DEBUG both feed the debug key.
func Load(projectRoot string) {
	if projectRoot != "" {
		// Ignore error if the project has no .env file.
		_ = godotenv.Load(filepath.Join(projectRoot, dotEnv))
	}

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	_ = viper.BindEnv(KeyDebug, DebugEnv, branding.EnvVar(KeyDebug))

	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyDebug, false)
	viper.SetDefault(KeyShowSecrets, false)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Debug reports whether the build runs in debug mode. Every value except
// "", "0" and "false" counts as debug.
func Debug() bool {
	return IsDebugValue(viper.GetString(KeyDebug))
}

// IsDebugValue interprets a raw debug setting.
func IsDebugValue(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false":
		return false
	}
	return true
}

// LogLevel returns the configured log level name.
func LogLevel() string {
	return viper.GetString(KeyLogLevel)
}

// ShowSecrets reports whether signing values are logged unredacted.
func ShowSecrets() bool {
	return viper.GetBool(KeyShowSecrets)
}

// ProjectRoot returns the configured project root, or "" when unset.
func ProjectRoot() string {
	return viper.GetString(KeyProjectRoot)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
