// Package config loads settings from flags, ZEROHALL_* environment
// variables and an optional zerohall.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/zerohall/internal/llm"
)

const (
	envPrefix  = "ZEROHALL"
	configName = "zerohall"
	appDir     = "zerohall"
)

// Config is the resolved application configuration.
type Config struct {
	DB         string
	Log        LogConfig
	LLM        llm.Config
	LLMEnabled bool
	Serve      ServeConfig
	Reflection ReflectionConfig
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// ServeConfig configures the HTTP API.
type ServeConfig struct {
	Addr           string
	AllowedOrigins []string
}

// ReflectionConfig configures gift reflections.
type ReflectionConfig struct {
	CacheSize int
	Timeout   time.Duration
}

// New returns a viper instance with defaults, env binding and config
// search paths applied.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("serve.addr", "127.0.0.1:8080")
	v.SetDefault("serve.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("reflection.cache_size", 32)
	v.SetDefault("reflection.timeout", "20s")

	d := llm.DefaultConfig()
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.anthropic.model", d.Anthropic.Model)
	v.SetDefault("llm.openai.model", d.OpenAI.Model)
	v.SetDefault("llm.gemini.model", d.Gemini.Model)
	v.SetDefault("llm.openrouter.model", d.OpenRouter.Model)
	v.SetDefault("llm.timeout", d.Timeout.String())

	// SetDefault makes these keys visible to AutomaticEnv lookups.
	for _, k := range []string{
		"db", "log.file",
		"llm.anthropic.api_key", "llm.openai.api_key", "llm.openai.base_url",
		"llm.gemini.api_key", "llm.openrouter.api_key", "llm.openrouter.base_url",
	} {
		v.SetDefault(k, "")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	if dir, err := configHome(); err == nil {
		v.AddConfigPath(filepath.Join(dir, appDir))
	}
	v.AddConfigPath(".")

	return v
}

// BindFlags binds the persistent CLI flags to their keys.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"db":         "db",
		"log.level":  "log-level",
		"log.format": "log-format",
		"log.file":   "log-file",
		"config":     "config",
	}
	for key, name := range bindings {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads the config file (if any) and resolves the full Config.
func Load(v *viper.Viper) (Config, error) {
	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		DB: v.GetString("db"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			File:   v.GetString("log.file"),
		},
		Serve: ServeConfig{
			Addr:           v.GetString("serve.addr"),
			AllowedOrigins: v.GetStringSlice("serve.allowed_origins"),
		},
		Reflection: ReflectionConfig{
			CacheSize: v.GetInt("reflection.cache_size"),
			Timeout:   v.GetDuration("reflection.timeout"),
		},
	}

	if cfg.Log.File == "" {
		p, err := defaultStatePath("zerohall.log")
		if err != nil {
			return Config{}, err
		}
		cfg.Log.File = p
	}
	if cfg.Reflection.CacheSize <= 0 {
		cfg.Reflection.CacheSize = 32
	}

	cfg.LLM, cfg.LLMEnabled = llmConfig(v)
	return cfg, nil
}

// llmConfig resolves provider settings. With no explicit provider it
// falls back to whichever standard API key is present.
func llmConfig(v *viper.Viper) (llm.Config, bool) {
	cfg := llm.DefaultConfig()
	cfg.Provider = v.GetString("llm.provider")
	cfg.Anthropic.APIKey = v.GetString("llm.anthropic.api_key")
	cfg.Anthropic.Model = v.GetString("llm.anthropic.model")
	cfg.OpenAI.APIKey = v.GetString("llm.openai.api_key")
	cfg.OpenAI.Model = v.GetString("llm.openai.model")
	cfg.OpenAI.BaseURL = v.GetString("llm.openai.base_url")
	cfg.Gemini.APIKey = v.GetString("llm.gemini.api_key")
	cfg.Gemini.Model = v.GetString("llm.gemini.model")
	cfg.OpenRouter.APIKey = v.GetString("llm.openrouter.api_key")
	cfg.OpenRouter.Model = v.GetString("llm.openrouter.model")
	cfg.OpenRouter.BaseURL = v.GetString("llm.openrouter.base_url")
	if d := v.GetDuration("llm.timeout"); d > 0 {
		cfg.Timeout = d
	}

	if cfg.Provider != "" {
		return cfg, true
	}
	if discovered, ok := llm.DiscoverConfig(); ok {
		return discovered, true
	}
	return cfg, false
}

// ResolveDBPath returns the configured database path, or the default
// $XDG_DATA_HOME/zerohall/zerohall.db. The parent directory is created.
func (c Config) ResolveDBPath() (string, error) {
	p := c.DB
	if p == "" {
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("resolve home dir: %w", err)
			}
			dataHome = filepath.Join(home, ".local", "share")
		}
		p = filepath.Join(dataHome, appDir, "zerohall.db")
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return p, nil
}

func configHome() (string, error) {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return d, nil
	}
	return os.UserConfigDir()
}

func defaultStatePath(name string) (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, appDir, name), nil
}
