// Package config loads GitCollection settings from flags, environment
// variables and an optional config.yaml in the storage directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	BackendFile = "file"
	BackendBolt = "bolt"

	DefaultStorageKey = "@GitCollection:repositories"

	appDir      = ".gitcollection"
	logFileName = "gitcollection.log"
	envPrefix   = "GITCOLLECTION"
)

type StorageConfig struct {
	Backend string `mapstructure:"backend"`
	Dir     string `mapstructure:"dir"`
	Key     string `mapstructure:"key"`
}

type GitHubConfig struct {
	Token   string `mapstructure:"token"`
	BaseURL string `mapstructure:"base_url"`
}

type LogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	File    string `mapstructure:"file"`
}

type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	GitHub  GitHubConfig  `mapstructure:"github"`
	Log     LogConfig     `mapstructure:"log"`
}

// New returns a viper instance with defaults and environment bindings set.
func New() *viper.Viper {
	v := viper.New()

	dir := appDir
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, appDir)
	}

	v.SetDefault("storage.backend", BackendFile)
	v.SetDefault("storage.dir", dir)
	v.SetDefault("storage.key", DefaultStorageKey)
	v.SetDefault("github.token", "")
	v.SetDefault("github.base_url", "")
	v.SetDefault("log.enabled", true)
	v.SetDefault("log.file", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("github.token", envPrefix+"_GITHUB_TOKEN", "GITHUB_TOKEN", "GH_TOKEN")

	return v
}

// Load reads configFile, or config.yaml from the storage directory when
// configFile is empty, and unmarshals the merged settings.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(v.GetString("storage.dir"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(cfg.Storage.Dir, logFileName)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendBolt:
	default:
		return fmt.Errorf("unsupported storage backend: %q", c.Storage.Backend)
	}

	if strings.TrimSpace(c.Storage.Key) == "" {
		return errors.New("storage key must not be empty")
	}

	if c.Storage.Dir == "" {
		return errors.New("storage directory must not be empty")
	}

	return nil
}
