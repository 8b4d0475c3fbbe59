package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Theme      string    `yaml:"theme"`
	LogLevel   string    `yaml:"log_level"`
	Categories string    `yaml:"categories"`
	WatchFile  bool      `yaml:"watch_file"`
	Web        WebConfig `yaml:"web"`
}

type WebConfig struct {
	Bind string `yaml:"bind"`
	Port int    `yaml:"port"`
}

func DefaultConfig() Config {
	return Config{
		Theme:     "mocha",
		LogLevel:  "info",
		WatchFile: true,
		Web:       WebConfig{Bind: "127.0.0.1"},
	}
}

func Load() (Config, error) {
	return LoadFrom(getConfigPath())
}

// LoadFromDir loads config.yaml from an explicit directory.
func LoadFromDir(dir string) (Config, error) {
	return LoadFrom(filepath.Join(dir, "config.yaml"))
}

func LoadFrom(configPath string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}

	if cfg.Theme == "" {
		cfg.Theme = "mocha"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Web.Bind == "" {
		cfg.Web.Bind = "127.0.0.1"
	}

	return cfg, nil
}

// ResolveCategoriesPath returns the categories file path, defaulting to
// categories.yaml inside dataDir when unset. A leading ~ expands to the
// user's home directory.
func (c *Config) ResolveCategoriesPath(dataDir string) string {
	path := c.Categories
	if path == "" {
		return filepath.Join(dataDir, "categories.yaml")
	}
	if len(path) > 1 && path[0] == '~' && path[1] == filepath.Separator {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func getConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "feeddeck", "config.yaml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "feeddeck", "config.yaml")
	}

	return filepath.Join(home, ".config", "feeddeck", "config.yaml")
}
