package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/Veraticus/transfers/internal/common"
	"github.com/Veraticus/transfers/internal/fetch"
	"github.com/Veraticus/transfers/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by viper, so api.endpoint
// is TRANSFERS_API_ENDPOINT.
const EnvPrefix = "TRANSFERS"

// Settings is the resolved application configuration.
type Settings struct {
	Logging LoggingSettings `mapstructure:"logging"`
	UI      UISettings      `mapstructure:"ui"`
	API     APISettings     `mapstructure:"api"`
}

// APISettings configures the remote fetcher.
type APISettings struct {
	Endpoint     string        `mapstructure:"endpoint" validate:"required,url"`
	Timeout      time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes" validate:"gt=0"`
}

// UISettings configures presentation.
type UISettings struct {
	Icons       string         `mapstructure:"icons" validate:"oneof=unicode ascii"`
	Theme       string         `mapstructure:"theme" validate:"oneof=default catppuccin-mocha"`
	DefaultSort string         `mapstructure:"default_sort"`
	SortMode    model.SortMode `mapstructure:"-"`
}

// LoggingSettings configures slog.
type LoggingSettings struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
	File   string `mapstructure:"file"`
}

var validate = validator.New()

// SetDefaults registers the default of every key. Registering a key also lets
// viper resolve it from the environment.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("api.endpoint", fetch.DefaultEndpoint)
	v.SetDefault("api.timeout", fetch.DefaultTimeout)
	v.SetDefault("api.max_body_bytes", fetch.DefaultMaxBodyBytes)
	v.SetDefault("ui.icons", "unicode")
	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.default_sort", model.SortNone.String())
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")
}

// BindEnv makes TRANSFERS_* variables override configured keys.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// ReadFile reads the config file at path, or config.yaml from the default
// directory and the working directory when path is empty. A missing default
// file is not an error; a missing explicit file wraps common.ErrMissingConfig.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(ExpandPath(path))
	} else {
		if dir, err := DefaultDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: config file %s does not exist", common.ErrMissingConfig, path)
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// LoadEnvFile loads variables from a .env file into the process environment
// without overriding variables that are already set. An empty path loads
// ./.env when it exists.
func LoadEnvFile(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		return nil
	}

	if err := godotenv.Load(ExpandPath(path)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: env file %s does not exist", common.ErrMissingConfig, path)
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// Load resolves and validates the settings held by v.
func Load(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}

	s.UI.Icons = strings.ToLower(strings.TrimSpace(s.UI.Icons))
	s.UI.Theme = strings.ToLower(strings.TrimSpace(s.UI.Theme))
	s.Logging.Level = strings.ToLower(strings.TrimSpace(s.Logging.Level))
	s.Logging.Format = strings.ToLower(strings.TrimSpace(s.Logging.Format))
	s.Logging.File = ExpandPath(s.Logging.File)

	if err := validate.Struct(s); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}

	mode, err := model.ParseSortMode(s.UI.DefaultSort)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: ui.default_sort: %v", common.ErrInvalidConfig, err)
	}
	s.UI.SortMode = mode

	return s, nil
}
