// Package config loads bhasha settings from a .env file, an optional config
// file, BHASHA_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/valpere/bhasha/internal/translation"
	"github.com/valpere/bhasha/internal/translator"
)

const EnvPrefix = "BHASHA"

// APIKeyEnv is the conventional variable holding the OpenAI key.
const APIKeyEnv = "OPENAI_API_KEY"

type OpenAIConfig struct {
	APIKey                   string `mapstructure:"api_key"`
	translator.ServiceConfig `mapstructure:",squash"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type SessionConfig struct {
	IdleTTL time.Duration `mapstructure:"idle_ttl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Config struct {
	OpenAI    OpenAIConfig       `mapstructure:"openai"`
	Translate translation.Config `mapstructure:"translate"`
	Server    ServerConfig       `mapstructure:"server"`
	Session   SessionConfig      `mapstructure:"session"`
	Log       LogConfig          `mapstructure:"log"`
}

// SetDefaults registers every key, which also makes each one reachable
// through AutomaticEnv.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.base_url", translator.DefaultBaseURL)
	v.SetDefault("openai.model", translator.DefaultModel)
	v.SetDefault("openai.client", "http")
	v.SetDefault("openai.timeout", time.Duration(0))
	v.SetDefault("translate.temperature", translation.DefaultTemperature)
	v.SetDefault("translate.max_tokens", translation.DefaultMaxTokens)
	v.SetDefault("translate.clean_output", false)
	v.SetDefault("server.addr", ":8501")
	v.SetDefault("session.idle_ttl", 12*time.Hour)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// LoadEnvFile copies variables from a .env file into the process
// environment without overriding ones already set. A missing file is fine.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load reads the config file (explicit path, or bhasha.yaml in the working
// directory when configFile is empty), applies env overrides and decodes.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("openai.api_key", EnvPrefix+"_OPENAI_API_KEY", APIKeyEnv); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", APIKeyEnv, err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("bhasha")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.OpenAI.APIKey = strings.TrimSpace(cfg.OpenAI.APIKey)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.OpenAI.Client {
	case "http", "sdk":
	default:
		return fmt.Errorf("openai.client must be http or sdk, got %q", c.OpenAI.Client)
	}
	if c.OpenAI.Model == "" {
		return fmt.Errorf("openai.model must not be empty")
	}
	if c.Translate.MaxTokens <= 0 {
		return fmt.Errorf("translate.max_tokens must be positive, got %d", c.Translate.MaxTokens)
	}
	if c.Translate.Temperature < 0 || c.Translate.Temperature > 2 {
		return fmt.Errorf("translate.temperature must be within [0, 2], got %v", c.Translate.Temperature)
	}
	return nil
}

// HasAPIKey reports whether translation can be offered.
func (c *Config) HasAPIKey() bool {
	return c.OpenAI.APIKey != ""
}
