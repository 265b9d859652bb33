package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Sheet SheetConfig
	LLM   LLMConfig
	UI    UIConfig
}

// SheetConfig identifies the published spreadsheet tab holding the log.
type SheetConfig struct {
	ID   string
	Name string
}

// LLMConfig holds provider settings.
type LLMConfig struct {
	Provider  string
	APIKeyEnv string
	APIKey    string
	Model     string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Target int
	Theme  string
}

// Load reads configuration from file and env. Env var overrides use prefix CONTENTDECK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("sheet.id", "")
	v.SetDefault("sheet.name", "ContentTracker")
	v.SetDefault("llm.provider", "anthropic")
	v.SetDefault("llm.api_key_env", "ANTHROPIC_API_KEY")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "claude-sonnet-4-20250514")
	v.SetDefault("ui.target", 30)
	v.SetDefault("ui.theme", "mocha")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CONTENTDECK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "contentdeck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CONTENTDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// APIKey resolves the LLM API key: the env var named by api_key_env wins,
// then the plain-text config value.
func (c Config) APIKey() string {
	if c.LLM.APIKeyEnv != "" {
		if key := os.Getenv(c.LLM.APIKeyEnv); key != "" {
			return key
		}
	}
	return c.LLM.APIKey
}

// Save writes the provided config to disk, creating the config directory if needed.
// The API key is stored in plain text in the config file; encourage users to prefer env vars.
func Save(cfg Config) error {
	path := os.Getenv("CONTENTDECK_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "contentdeck", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("sheet.id", cfg.Sheet.ID)
	v.Set("sheet.name", cfg.Sheet.Name)
	v.Set("llm.provider", cfg.LLM.Provider)
	v.Set("llm.api_key_env", cfg.LLM.APIKeyEnv)
	v.Set("llm.api_key", cfg.LLM.APIKey)
	v.Set("llm.model", cfg.LLM.Model)
	v.Set("ui.target", cfg.UI.Target)
	v.Set("ui.theme", cfg.UI.Theme)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
