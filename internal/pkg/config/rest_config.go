package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. IDEA_CIPHER_CACHE_SIZE.
const EnvPrefix = "IDEA"

// RestConfig holds the settings of the REST API server.
type RestConfig struct {
	Port           string         `mapstructure:"port" validate:"required,numeric"`
	AllowedOrigins []string       `mapstructure:"allowed_origins" validate:"required,min=1"`
	Logger         LoggerSettings `mapstructure:"logger"`
	Cipher         CipherSettings `mapstructure:"cipher"`
}

// Validate checks the server fields and every nested settings struct.
func (c *RestConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Cipher.Validate()
}

// InitializeRestConfig reads the YAML file at path, applies IDEA_ environment
// overrides on top of it and validates the result. A missing file is not an
// error; defaults and environment are used instead.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setRestDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &RestConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setRestDefaults registers every key so that environment overrides reach
// Unmarshal even when the file omits them.
func setRestDefaults(v *viper.Viper) {
	logger := DefaultLoggerSettings()
	cipher := DefaultCipherSettings()

	v.SetDefault("port", "8080")
	v.SetDefault("allowed_origins", []string{"*"})
	v.SetDefault("logger.log_level", logger.LogLevel)
	v.SetDefault("logger.log_type", logger.LogType)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)
	v.SetDefault("cipher.mul_convention", cipher.MulConvention)
	v.SetDefault("cipher.cache_size", cipher.CacheSize)
}
