package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding file settings,
// e.g. TEXT_VAULT_LOGGER_LOG_LEVEL=debug.
const EnvPrefix = "TEXT_VAULT"

// CLIConfig holds configuration for the text-vault-cli binary
type CLIConfig struct {
	Logger LoggerSettings `mapstructure:"logger"`
	Text   TextSettings   `mapstructure:"text"`
}

// RestConfig holds configuration for the text-vault-rest-api binary
type RestConfig struct {
	Port   string         `mapstructure:"port" validate:"required,numeric"`
	Logger LoggerSettings `mapstructure:"logger"`
	Text   TextSettings   `mapstructure:"text"`
}

// Validate checks that all fields in CLIConfig are valid
func (c *CLIConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Text.Validate()
}

// Validate checks that all fields in RestConfig are valid
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.StructPartial(c, "Port"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Text.Validate()
}

// InitializeCLIConfig loads CLI settings from configPath (optional) and the environment.
func InitializeCLIConfig(configPath string) (*CLIConfig, error) {
	v, err := newViper(configPath)
	if err != nil {
		return nil, err
	}

	var cfg CLIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal CLI config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid CLI config: %w", err)
	}

	return &cfg, nil
}

// InitializeRestConfig loads REST API settings from configPath (optional) and the environment.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v, err := newViper(configPath)
	if err != nil {
		return nil, err
	}
	v.SetDefault("port", "8080")

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal REST config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid REST config: %w", err)
	}

	return &cfg, nil
}

func newViper(configPath string) (*viper.Viper, error) {
	v := viper.New()

	// Every key needs a default so AutomaticEnv can override it during Unmarshal.
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)
	v.SetDefault("text.default_sign_algorithm", DefaultSignAlgorithm)
	v.SetDefault("text.default_cipher_algorithm", DefaultCipherAlgorithm)
	v.SetDefault("text.key_dir", ".")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		return v, nil
	}

	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	return v, nil
}
