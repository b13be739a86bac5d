package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/wgrayson/slamdb/internal/console"
)

type Config struct {
	Console   string `mapstructure:"console"`
	Dir       string `mapstructure:"dir"`
	Dat       string `mapstructure:"dat"`
	Database  string `mapstructure:"database"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Load initializes and loads configuration from file
func Load(cfgFile string) (*Config, error) {
	// Set defaults
	viper.SetDefault("console", "pc")
	viper.SetDefault("dir", "MASTER.DIR")
	viper.SetDefault("dat", "MASTER.DAT")
	viper.SetDefault("database", "slam.db")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "text")

	// Config file handling
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName("slamdb")
		viper.SetConfigType("yaml")
	}

	// Read config file (optional)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate the console selection up front so every command can rely
	// on it being parseable
	if _, err := console.Parse(cfg.Console); err != nil {
		return nil, fmt.Errorf("invalid console configuration: %w", err)
	}

	return &cfg, nil
}

// GameConsole returns the parsed console profile for the configured console
// name. Load has already validated the name.
func (c *Config) GameConsole() console.Console {
	parsed, err := console.Parse(c.Console)
	if err != nil {
		panic(err)
	}
	return parsed
}
